package skiplist

// ForEach visits every entry in ascending key order until visit returns
// false. Entries with equal keys are visited newest first.
func (m *Map[K, V]) ForEach(visit VisitFunc[K, V]) {
	for n := m.head.next[0]; !n.isEnd(); n = n.next[0] {
		if !visit(n.key, n.value) {
			return
		}
	}
}

// ForEachFrom visits entries starting at the first entry equal to key and
// walks to the end of the map unless visit stops it. When no entry equals
// key, nothing is visited, even if larger keys exist.
func (m *Map[K, V]) ForEachFrom(key K, visit VisitFunc[K, V]) {
	for n := m.firstEqual(key); n != nil && !n.isEnd(); n = n.next[0] {
		if !visit(n.key, n.value) {
			return
		}
	}
}

// Iterator provides a forward-only view over the map. Any mutation of the map
// invalidates outstanding iterators.
type Iterator[K, V any] struct {
	m       *Map[K, V]
	current *Node[K, V]
	valid   bool
}

// Iterator returns a new iterator positioned before the first entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// SeekGE returns an iterator positioned at the first entry whose key is
// greater than or equal to key.
func (m *Map[K, V]) SeekGE(key K) *Iterator[K, V] {
	it := m.Iterator()
	it.SeekGE(key)
	return it
}

// Valid reports whether the iterator currently points at an entry.
func (it *Iterator[K, V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	if it == nil || !it.valid {
		var zero K
		return zero
	}
	return it.current.key
}

// Value returns the value at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	if it == nil || !it.valid {
		var zero V
		return zero
	}
	return it.current.value
}

// SeekGE positions the iterator at the first entry whose key is greater than
// or equal to the provided key. It returns true if such an entry exists.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.m == nil {
		return false
	}

	n := it.m.seekFirstGE(key)
	if n.isEnd() {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = n
	it.valid = true
	return true
}

// Next advances the iterator to the next entry and reports whether it
// successfully moved forward. If the iterator was not valid prior to the
// call, it advances to the first entry.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.m == nil {
		return false
	}

	var next *Node[K, V]
	if it.valid {
		next = it.current.next[0]
	} else {
		next = it.m.head.next[0]
	}
	if next.isEnd() {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = next
	it.valid = true
	return true
}
