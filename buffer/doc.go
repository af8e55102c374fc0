// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Reusable growable buffers for allocation-free hot paths.
//
// A Reusable owns one contiguous region and recycles it across many
// reset-and-refill cycles, reallocating only when the region is
// genuinely out of capacity. After a short warm-up phase the backing
// storage stabilizes and steady-state operation performs zero
// allocations.
//
// Buffers are single-goroutine values. Nothing here is synchronized;
// callers needing concurrent producers must keep one buffer per worker
// or serialize externally.
package buffer
