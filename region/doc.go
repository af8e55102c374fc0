// Package region
// Author: momentics <momentics@gmail.com>
//
// Off-heap backing regions for adopted buffers.
//
// A Slab is a byte region allocated outside the Go heap where the
// platform allows (hugepage mmap on Linux, plain heap elsewhere) and
// handed to a buffer via Adopt. The slab implements the
// overwrite-permission hook, so buffers backed by it record every
// point at which trailing storage became legal to stomp.
// See region_linux.go for the platform allocation details.
package region
