package filter

import (
	"image"
	"sync"
)

// BlurFilter applies separable Gaussian blur to an image.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*r) complexity instead of O(w*h*r²).
type BlurFilter struct {
	// Radius is the blur radius in pixels, used as the Gaussian sigma.
	Radius float64
}

// NewBlurFilter creates a new blur filter with the given radius.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{Radius: radius}
}

// Apply returns a blurred copy of src.
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with 1D kernel into a float buffer
//  2. Vertical pass: convolve each column of the buffer into the result
func (f *BlurFilter) Apply(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)

	// Radius 0 is the identity.
	if f.Radius <= 0 {
		copyPixels(dst, src)
		return dst
	}

	width := src.Rect.Dx()
	height := src.Rect.Dy()
	if width == 0 || height == 0 {
		return dst
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(f.Radius)

	blurHorizontal(src, temp, width, height, kernel)
	blurVertical(temp, dst, width, height, kernel)

	return dst
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes to temp buffer.
func blurHorizontal(src *image.NRGBA, temp []float32, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				// Clamp to source bounds (edge extension)
				kx := clampInt(x+k-halfKernel, 0, width-1)
				idx := kx * 4

				r += float32(row[idx+0]) * weight
				g += float32(row[idx+1]) * weight
				b += float32(row[idx+2]) * weight
				a += float32(row[idx+3]) * weight
			}

			tempIdx := (y*width + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp buffer, writes to dst.
func blurVertical(temp []float32, dst *image.NRGBA, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, 0, height-1)
				tempIdx := (ky*width + x) * 4

				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			idx := x * 4
			row[idx+0] = clampUint8(float64(r))
			row[idx+1] = clampUint8(float64(g))
			row[idx+2] = clampUint8(float64(b))
			row[idx+3] = clampUint8(float64(a))
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 1024*1024*4)} // 16MB, 1024x1024 RGBA
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer has exactly width*height*4 elements. Every element is written
// by the horizontal pass before it is read, so the buffer is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 { // 64MB max
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
