// Package cache memoizes small derived tables such as Gaussian kernels and
// 256-entry channel lookup tables.
//
//	kernels := cache.New[int, []float32](64)
//	k := kernels.GetOrCreate(key, func() []float32 { return build(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
