// Package pool provides object pooling for go-optable parsing
// Used by optparse to recycle the working copy of the argument vector
package pool

import (
	"sync"

	"github.com/dzonerzy/go-optable/argv"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T) // Optional reset function called before reuse
	maxSize int      // Maximum objects to keep (0 = unlimited)
	count   int64    // Current pool size (approximate)
	mutex   sync.RWMutex
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}

	if p.maxSize > 0 {
		p.mutex.Lock()
		if p.count > 0 {
			p.count--
		}
		p.mutex.Unlock()
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	if p.maxSize > 0 {
		p.mutex.Lock()
		defer p.mutex.Unlock()
		if p.count >= int64(p.maxSize) {
			return
		}
		p.count++
	}

	p.pool.Put(obj)
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// BufferPool hands out byte slices from capacity buckets. Larger requests
// are allocated directly and never pooled.
type BufferPool struct {
	buckets []int
	pools   []*Pool[[]byte]
}

// NewBufferPool creates a buffer pool with the given ascending bucket sizes
func NewBufferPool(buckets ...int) *BufferPool {
	bp := &BufferPool{buckets: buckets, pools: make([]*Pool[[]byte], len(buckets))}
	for i, size := range buckets {
		capacity := size
		bp.pools[i] = NewPoolWithReset(
			func() *[]byte {
				buf := make([]byte, 0, capacity)
				return &buf
			},
			func(buf *[]byte) { *buf = (*buf)[:0] },
		)
	}
	return bp
}

// Get returns an empty buffer with at least minCap capacity
func (bp *BufferPool) Get(minCap int) *[]byte {
	if i := bp.bucket(minCap); i >= 0 {
		return bp.pools[i].Get()
	}
	buf := make([]byte, 0, minCap)
	return &buf
}

// Put returns buf to the bucket its capacity fits
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil {
		return
	}
	c := cap(*buf)
	for i := len(bp.buckets) - 1; i >= 0; i-- {
		if c >= bp.buckets[i] {
			if c <= bp.buckets[len(bp.buckets)-1] {
				bp.pools[i].Put(buf)
			}
			return
		}
	}
}

func (bp *BufferPool) bucket(minCap int) int {
	for i, size := range bp.buckets {
		if size >= minCap {
			return i
		}
	}
	return -1
}

// VectorPool recycles argument vectors. Vectors come out empty and
// unallocated, with whatever capacity they had when returned.
type VectorPool struct {
	*Pool[argv.Vector]
}

// NewVectorPool creates a vector pool keeping at most maxSize vectors
func NewVectorPool(maxSize int) *VectorPool {
	p := NewPoolWithReset(
		func() *argv.Vector { return &argv.Vector{} },
		func(v *argv.Vector) { v.Reset() },
	)
	p.SetMaxSize(maxSize)
	return &VectorPool{Pool: p}
}

// Clone returns a pooled vector holding a copy of src
func (vp *VectorPool) Clone(src *argv.Vector) *argv.Vector {
	v := vp.Get()
	v.Merge(src)
	return v
}

// Release clears v and returns it to the pool
func (vp *VectorPool) Release(v *argv.Vector) {
	if v == nil {
		return
	}
	v.Reset()
	vp.Put(v)
}

var (
	// GlobalVectorPool is shared by every parser in the process
	GlobalVectorPool = NewVectorPool(64)

	// GlobalBufferPool backs log line formatting
	GlobalBufferPool = NewBufferPool(128, 256, 512, 1024, 4096)
)

// GetVector clones src into a vector from the global pool
func GetVector(src *argv.Vector) *argv.Vector {
	return GlobalVectorPool.Clone(src)
}

// PutVector returns a vector to the global pool
func PutVector(v *argv.Vector) {
	GlobalVectorPool.Release(v)
}

// GetBuffer retrieves a buffer from the global pool
func GetBuffer(minCap int) *[]byte {
	return GlobalBufferPool.Get(minCap)
}

// PutBuffer returns a buffer to the global pool
func PutBuffer(buf *[]byte) {
	GlobalBufferPool.Put(buf)
}
