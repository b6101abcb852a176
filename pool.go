package skiplist

import "sync"

// PoolAllocator recycles nodes through a sync.Pool. Released nodes have their
// key, value and links zeroed so the pool never pins caller data.
type PoolAllocator[K, V any] struct {
	pool sync.Pool
}

// NewPoolAllocator returns an empty pool-backed allocator. One allocator may
// back several maps with the same type parameters.
func NewPoolAllocator[K, V any]() *PoolAllocator[K, V] {
	p := &PoolAllocator[K, V]{}
	p.pool.New = func() any { return &Node[K, V]{} }
	return p
}

// Acquire implements Allocator. Recycled nodes keep their next slice when its
// capacity covers the requested height.
func (p *PoolAllocator[K, V]) Acquire(height int, key K, value V) *Node[K, V] {
	n := p.pool.Get().(*Node[K, V])

	if cap(n.next) < height {
		n.next = make([]*Node[K, V], height)
	} else {
		n.next = n.next[:height]
	}

	n.key = key
	n.value = value
	return n
}

// Release implements Allocator.
func (p *PoolAllocator[K, V]) Release(n *Node[K, V]) {
	if n == nil {
		return
	}

	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV

	if cap(n.next) > 0 {
		full := n.next[:cap(n.next)]
		for i := range full {
			full[i] = nil
		}
	}

	p.pool.Put(n)
}
