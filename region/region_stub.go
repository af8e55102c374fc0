//go:build !linux
// +build !linux

// File: region/region_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed slabs for platforms without the mmap path.

package region

func allocRegion(size int) (data, raw []byte) {
	if size == 0 {
		return nil, nil
	}
	return make([]byte, size), nil
}

func releaseRegion(raw []byte) error {
	return nil
}
