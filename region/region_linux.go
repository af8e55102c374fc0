//go:build linux
// +build linux

// File: region/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux slabs are allocated via mmap with MAP_HUGETLB for 2 MiB pages.
// Fallback to Go heap if hugepage allocation fails.

package region

import "golang.org/x/sys/unix"

// allocRegion maps or allocates a region of exactly size bytes.
// raw is the full mapping for later Munmap, nil on heap fallback.
func allocRegion(size int) (data, raw []byte) {
	if size == 0 {
		return nil, nil
	}
	// Round to hugepage (2 MiB) boundary
	const hugeSize = 2 << 20
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize

	mem, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return make([]byte, size), nil
	}
	return mem[:size], mem
}

// releaseRegion returns hugepage memory to the OS.
func releaseRegion(raw []byte) error {
	if raw == nil {
		return nil
	}
	return unix.Munmap(raw)
}
