// File: pool/bufferpool.go
// Package pool implements size-classed recycling of reusable buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/reusebuf/api"
	"github.com/momentics/reusebuf/buffer"
	"github.com/momentics/reusebuf/internal/normalize"
)

const freeListCapacity = 1024

// Manager routes buffer requests to per-size-class pools, lazily
// allocating each pool on first use.
type Manager struct {
	mu    sync.RWMutex
	class map[int]*BufferPool
}

// NewManager initializes an empty manager.
func NewManager() *Manager {
	return &Manager{class: make(map[int]*BufferPool)}
}

// GetPool returns the pool for the smallest size class covering size.
func (m *Manager) GetPool(size int) *BufferPool {
	clz := normalize.SizeClass(normalize.Capacity(size))

	m.mu.RLock()
	p, ok := m.class[clz]
	m.mu.RUnlock()
	if ok {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok = m.class[clz]; ok {
		return p
	}
	p = New(clz)
	m.class[clz] = p
	return p
}

// BufferPool recycles buffer.Bytes of one size class. Get and Put may
// be called from different goroutines; the buffers themselves must
// still be confined to one goroutine at a time.
type BufferPool struct {
	size int

	mu   sync.Mutex
	free *queue.Queue

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// New creates a pool whose fresh buffers carry exactly size bytes of
// capacity.
func New(size int) *BufferPool {
	return &BufferPool{
		size: normalize.Capacity(size),
		free: queue.New(),
	}
}

// Get returns an empty buffer with capacity of at least size bytes,
// reusing a recycled one when the free list holds a fit. Recycled
// buffers too small for the request are dropped rather than requeued.
func (p *BufferPool) Get(size int) *buffer.Bytes {
	size = normalize.Capacity(size)

	p.mu.Lock()
	for p.free.Length() > 0 {
		b := p.free.Remove().(*buffer.Bytes)
		if b.Cap() >= size {
			p.mu.Unlock()
			b.SetLen(0)
			return b
		}
	}
	p.mu.Unlock()

	p.totalAlloc.Add(1)
	if size < p.size {
		size = p.size
	}
	return buffer.NewBytes(size)
}

// Put recycles b. The caller must not use b afterwards. When the free
// list is full the buffer is abandoned to the collector.
func (p *BufferPool) Put(b *buffer.Bytes) {
	if b == nil {
		return
	}
	p.mu.Lock()
	if p.free.Length() < freeListCapacity {
		p.free.Add(b)
		p.mu.Unlock()
		p.totalFree.Add(1)
		return
	}
	p.mu.Unlock()
}

// Stats exposes allocation/reuse accounting.
func (p *BufferPool) Stats() api.PoolStats {
	totalAlloc := p.totalAlloc.Load()
	totalFree := p.totalFree.Load()
	return api.PoolStats{
		TotalAlloc: totalAlloc,
		TotalFree:  totalFree,
		InUse:      totalAlloc - totalFree,
	}
}
