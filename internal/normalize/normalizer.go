// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified normalization routines for capacity hints and pool size
// classes. Ensures all constructors and pool lookups validate
// caller-supplied sizes to prevent negative-capacity panics and silent
// fallbacks. Should be used by ALL call sites taking a size parameter.

package normalize

// Size classes for pooled byte buffers, powers of two from 2K to 1M.
// The table can be tuned for deployment needs.
var sizeClasses = [...]int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// Capacity validates a capacity hint.
//   - If hint < 0, returns fallback value 0 (no backing storage).
func Capacity(hint int) int {
	if hint < 0 {
		return 0
	}
	return hint
}

// SizeClass returns the smallest class >= the requested size, or the
// biggest class as fallback for oversized requests.
func SizeClass(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return sizeClasses[len(sizeClasses)-1]
}
