// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed recycling of reusable byte buffers.
//
// Managers route requests to per-class pools so buffers of a similar
// working size share one free list, keeping steady-state operation
// allocation-free across goroutine handoffs. Individual buffers stay
// single-goroutine objects; only the free list is guarded.
// See bufferpool.go for implementation details.
package pool
