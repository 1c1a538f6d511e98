package filter

import (
	"math"

	"github.com/gogpu/filmphoto/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The kernel is normalized so all values sum to 1.0.
//
// The radius is used as the standard deviation, and the kernel size is
// 2 * ceil(radius * 3) + 1, which covers 99.7% of the distribution.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels out on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache holds computed kernels keyed by radius * 100, so radii that
// differ by less than 0.01 share a kernel.
var kernelCache = cache.New[int, []float32](64)

// CachedGaussianKernel returns a cached Gaussian kernel for the radius.
// Callers must not modify the returned slice.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(radius * 100)
	return kernelCache.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}

// OptimalKernelSize returns the kernel size GaussianKernel produces for a radius.
func OptimalKernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	halfSize := int(math.Ceil(radius * 3))
	return halfSize*2 + 1
}
