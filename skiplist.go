package skiplist

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Map is an ordered collection of key/value entries backed by a probabilistic
// skip list. Keys are ordered by the comparator given to New. Duplicate keys
// are allowed: equal keys form an adjacent run, newest entry first, and the
// single-key operations act on the run's first entry.
//
// A Map is not safe for concurrent use. Callers sharing one across goroutines
// must synchronize externally.
type Map[K, V any] struct {
	cmp       Comparator[K]
	head      *Node[K, V]
	tail      *Node[K, V]
	length    int
	maxHeight int
	p         float64
	src       rand.Source
	alloc     Allocator[K, V]
	logger    *zap.Logger
	stats     Stats
}

// New returns an empty Map ordered by cmp.
func New[K, V any](cmp Comparator[K], opts ...Option) (*Map[K, V], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.maxHeight < 1 || conf.maxHeight > MaxHeightLimit {
		return nil, fmt.Errorf("%w: max height %d outside [1, %d]", ErrInvalidConfig, conf.maxHeight, MaxHeightLimit)
	}
	if conf.p <= 0 || conf.p >= 1 {
		return nil, fmt.Errorf("%w: probability %v outside (0, 1)", ErrInvalidConfig, conf.p)
	}

	var alloc Allocator[K, V] = heapAllocator[K, V]{}
	if conf.alloc != nil {
		a, ok := conf.alloc.(Allocator[K, V])
		if !ok {
			return nil, fmt.Errorf("%w: allocator %T does not match the map's type parameters", ErrInvalidConfig, conf.alloc)
		}
		alloc = a
	}

	src := conf.source
	if src == nil {
		if conf.seeded {
			src = rand.NewPCG(conf.seed, conf.seed)
		} else {
			src = rand.NewPCG(rand.Uint64(), rand.Uint64())
		}
	}

	logger := conf.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Map[K, V]{
		cmp:       cmp,
		tail:      &Node[K, V]{},
		maxHeight: conf.maxHeight,
		p:         conf.p,
		src:       src,
		alloc:     alloc,
		logger:    logger,
	}

	var zeroK K
	var zeroV V
	head := m.newNode(1, zeroK, zeroV)
	if head == nil {
		return nil, ErrAllocatorExhausted
	}
	m.head = head
	return m, nil
}

// newNode acquires a node and points every level at the end marker.
func (m *Map[K, V]) newNode(height int, key K, value V) *Node[K, V] {
	n := m.alloc.Acquire(height, key, value)
	if n == nil {
		return nil
	}
	m.stats.NodesAcquired++
	for i := range n.next {
		n.next[i] = m.tail
	}
	return n
}

func (m *Map[K, V]) release(n *Node[K, V]) {
	m.stats.NodesReleased++
	m.alloc.Release(n)
}

// Len returns the number of entries, duplicates included.
func (m *Map[K, V]) Len() int { return m.length }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.length == 0 }

// Get returns the value of the first entry equal to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.firstEqual(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether at least one entry equals key.
func (m *Map[K, V]) Contains(key K) bool {
	return m.firstEqual(key) != nil
}

// First returns the smallest entry.
func (m *Map[K, V]) First() (K, V, bool) {
	first := m.head.next[0]
	if first.isEnd() {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return first.key, first.value, true
}

// Last returns the largest entry.
func (m *Map[K, V]) Last() (K, V, bool) {
	last := m.lastNode()
	if last == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return last.key, last.value, true
}

// Front returns the first node for direct walking via Node.Next, or nil when
// the map is empty. Mutating the map invalidates nodes obtained this way.
func (m *Map[K, V]) Front() *Node[K, V] {
	first := m.head.next[0]
	if first.isEnd() {
		return nil
	}
	return first
}
