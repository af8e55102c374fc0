// File: api/buffer.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts for reusable growable buffers.
//
// A buffer owns its backing region exclusively. Views handed out by a
// buffer alias the live region at call time only and are invalidated by
// the next mutating call on the same buffer.

package api

// Sink consumes elements one at a time. Growable buffers satisfy Sink
// so they can stand in for any single-element consumer protocol.
type Sink[T any] interface {
	Put(v T)
}

// OverwriteHinter is the overwrite-permission hook.
//
// A buffer calls PermitOverwrite immediately before every length shrink
// and every append, telling the backing allocator that storage beyond
// the live region is not in use elsewhere and may be stomped in place
// instead of defensively relocated.
//
// The Go runtime already extends a slice in place whenever capacity
// suffices, so heap-backed buffers need no hint and carry none. The hook
// exists for adopted regions whose external allocator wants the signal,
// such as an instrumented arena or an mmap-backed slab.
type OverwriteHinter interface {
	// PermitOverwrite reports the live element count and total capacity
	// at the moment the overwrite becomes legal.
	PermitOverwrite(live, capacity int)
}

// PoolStats aggregates buffer allocation/reuse accounting.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
