// File: region/region.go
// Package region
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package region

import (
	"github.com/momentics/reusebuf/api"
	"github.com/momentics/reusebuf/buffer"
)

// Slab is an owned contiguous byte region. Like the buffers it backs,
// a slab is a single-goroutine object with no internal locking.
type Slab struct {
	data     []byte // usable region, len == requested size
	raw      []byte // full mapping when mmap-backed, nil on heap fallback
	released bool
	hints    int
}

// AllocSlab allocates a region of exactly size bytes. On Linux the
// region is a hugepage mapping when the system grants one, otherwise
// heap memory; other platforms always use the heap. A negative size is
// rejected with api.ErrSlabSize.
func AllocSlab(size int) (*Slab, error) {
	if size < 0 {
		return nil, api.ErrSlabSize
	}
	data, raw := allocRegion(size)
	return &Slab{data: data, raw: raw}, nil
}

// Bytes returns the region at full length. Panics after Release.
func (s *Slab) Bytes() []byte {
	if s.released {
		panic("region: use of released slab")
	}
	return s.data
}

// Size returns the usable region size in bytes.
func (s *Slab) Size() int {
	return len(s.data)
}

// Adopt hands the region to a fresh buffer at logical length zero and
// registers the slab as the buffer's overwrite hint. Ownership of the
// region's contents passes to the buffer; the caller keeps only the
// obligation to Release the slab once the buffer is done with it. An
// append that outgrows the slab moves the buffer onto the heap and
// leaves the slab contents behind.
func (s *Slab) Adopt() *buffer.Bytes {
	b := buffer.AdoptBytes(s.Bytes()[:0])
	b.SetOverwriteHint(s)
	return b
}

// PermitOverwrite implements api.OverwriteHinter. Mapped memory may
// always be overwritten in place, so the slab only counts the signal.
func (s *Slab) PermitOverwrite(live, capacity int) {
	s.hints++
}

// OverwriteHints reports how many times an adopted buffer signalled
// that trailing storage became legal to stomp. Diagnostic only.
func (s *Slab) OverwriteHints() int {
	return s.hints
}

// Release returns the region to the OS (for mapped slabs) or abandons
// it to the collector. The slab and every buffer still adopted over it
// must not be used afterwards. A second Release reports
// api.ErrSlabReleased.
func (s *Slab) Release() error {
	if s.released {
		return api.ErrSlabReleased
	}
	s.released = true
	err := releaseRegion(s.raw)
	s.data = nil
	s.raw = nil
	return err
}

var _ api.OverwriteHinter = (*Slab)(nil)
