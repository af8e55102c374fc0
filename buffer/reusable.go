// File: buffer/reusable.go
// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core reusable buffer: amortized growth, explicit length control, and
// the overwrite-permission protocol for adopted regions.

package buffer

import "github.com/momentics/reusebuf/api"

// Reusable owns a contiguous region of T with logical length Len() and
// capacity Cap(). Elements in [0, Len()) are live; storage beyond the
// live region is allocated but logically absent and may be overwritten
// by any append or length change without notice.
//
// T must not carry immutable-by-contract values: the whole design rests
// on being allowed to stomp previously written storage.
//
// Aliasing hazard: a slice returned by Raw reflects the storage pointer
// and length at call time only. Any later Append, Put, SetLen or Write
// on the same buffer invalidates it; after a reallocation it refers to
// a detached stale region. Never retain a Raw view across a mutation.
//
// A Reusable must not be copied after first use; re-backing a variable
// goes through Adopt, which produces a fresh value. The copy would
// alias the region while tracking its own length, exactly the state
// sharing the contract forbids.
type Reusable[T any] struct {
	noCopy noCopy

	s    []T
	hint api.OverwriteHinter
}

// NewWithCapacity allocates a region of exactly capacity elements and
// returns an empty buffer over it. A capacity of zero or less yields a
// buffer with no backing storage. This constructor is the only
// operation where a fresh allocation is the normal outcome.
func NewWithCapacity[T any](capacity int) *Reusable[T] {
	if capacity <= 0 {
		return &Reusable[T]{}
	}
	return &Reusable[T]{s: make([]T, 0, capacity)}
}

// Adopt takes ownership of region, preserving len(region) as the
// logical length and cap(region) as the capacity. No allocation occurs.
// After Adopt the caller must never touch region (or any slice aliasing
// it) again; the buffer is now the sole owner.
func Adopt[T any](region []T) *Reusable[T] {
	return &Reusable[T]{s: region}
}

// Raw returns a view of the live region [0, Len()). See the aliasing
// hazard on Reusable.
func (b *Reusable[T]) Raw() []T {
	return b.s
}

// Len returns the number of live elements.
func (b *Reusable[T]) Len() int {
	return len(b.s)
}

// Cap returns the total capacity of the backing region.
func (b *Reusable[T]) Cap() int {
	return cap(b.s)
}

// SetLen changes the logical length to n. Panics if n is negative.
//
// Shrinking keeps the backing storage and leaves the abandoned tail
// bytes untouched; they are stale, not zeroed. Extending within
// capacity happens in place and exposes whatever stale values already
// occupy that storage. Extending past capacity reallocates to exactly
// n elements (growth amount is caller-driven here, not a doubling
// strategy), preserving the live prefix; the new tail is
// zero-initialized by the runtime.
func (b *Reusable[T]) SetLen(n int) {
	if n < 0 {
		panic("buffer: negative length")
	}
	b.permitOverwrite()
	if n <= cap(b.s) {
		b.s = b.s[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, b.s)
	b.s = grown
}

// Append writes vals after the live region. While capacity suffices the
// write happens in place and the storage identity is stable; otherwise
// the region is regrown with the runtime's amortized append strategy,
// live elements are copied over, and the old region is abandoned. A
// single element and a bulk sequence take the same path.
func (b *Reusable[T]) Append(vals ...T) {
	b.permitOverwrite()
	b.s = append(b.s, vals...)
}

// Put appends one element. It exists so a Reusable satisfies api.Sink
// and generic single-element consumer protocols without extra glue.
func (b *Reusable[T]) Put(v T) {
	b.Append(v)
}

// SetOverwriteHint installs h as the overwrite-permission hook. It is
// consulted immediately before every shrink and append, signalling the
// backing allocator that trailing storage may be stomped in place. Pass
// nil to remove the hook. Heap-backed buffers never need one.
func (b *Reusable[T]) SetOverwriteHint(h api.OverwriteHinter) {
	b.hint = h
}

func (b *Reusable[T]) permitOverwrite() {
	if b.hint != nil {
		b.hint.PermitOverwrite(len(b.s), cap(b.s))
	}
}

var _ api.Sink[int] = (*Reusable[int])(nil)

// noCopy makes `go vet -copylocks` flag value copies of a Reusable.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
