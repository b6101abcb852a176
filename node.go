package skiplist

// Node is a single entry of a Map, linked forward at every level up to its
// height. Nodes are produced and recycled by the map's Allocator; anything a
// caller holds on to is invalidated once the map removes the entry.
type Node[K, V any] struct {
	key   K
	value V
	next  []*Node[K, V]
}

// NewNode builds a detached node of the given height. Custom Allocator
// implementations hand nodes out with it; the forward pointers are wired by
// the map after Acquire.
func NewNode[K, V any](height int, key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
		next:  make([]*Node[K, V], height),
	}
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V]) Value() V { return n.value }

// Height returns the number of levels the node is linked at.
func (n *Node[K, V]) Height() int { return len(n.next) }

// Next returns the node's successor on the bottom level, or nil at the end of
// the list.
func (n *Node[K, V]) Next() *Node[K, V] {
	next := n.next[0]
	if next.isEnd() {
		return nil
	}
	return next
}

// isEnd reports whether n is a list's end marker. End markers are the only
// zero-height nodes.
func (n *Node[K, V]) isEnd() bool { return len(n.next) == 0 }

// Allocator produces and recycles nodes for a Map. Acquire returns a node
// whose next slice holds exactly height entries, or nil when no node can be
// produced. Release receives every node that leaves the list, the head
// included on Destroy.
type Allocator[K, V any] interface {
	Acquire(height int, key K, value V) *Node[K, V]
	Release(n *Node[K, V])
}

// heapAllocator is the default: nodes come from the heap and releasing them
// just drops the reference for the garbage collector.
type heapAllocator[K, V any] struct{}

func (heapAllocator[K, V]) Acquire(height int, key K, value V) *Node[K, V] {
	return NewNode(height, key, value)
}

func (heapAllocator[K, V]) Release(*Node[K, V]) {}
