package skiplist

import "go.uber.org/zap"

// Insert adds an entry for key. Keys already present are not disturbed: the
// new entry is linked just before the existing run, so the single-key
// operations see the most recent duplicate first. The only failure is an
// exhausted allocator, which leaves the map unchanged.
func (m *Map[K, V]) Insert(key K, value V) error {
	_, _, err := m.insert(key, value, false)
	return err
}

// Upsert replaces the value of the first entry equal to key and returns the
// previous value with replaced == true. When the key is absent it inserts
// like Insert does.
func (m *Map[K, V]) Upsert(key K, value V) (prev V, replaced bool, err error) {
	return m.insert(key, value, true)
}

func (m *Map[K, V]) insert(key K, value V, replace bool) (prev V, replaced bool, err error) {
	headH := len(m.head.next)
	var prevsBuf [MaxHeightLimit]*Node[K, V]
	prevs := prevsBuf[:headH]
	m.findPrevs(key, prevs)

	if replace {
		if next := prevs[0].next[0]; !next.isEnd() && m.cmp(next.key, key) == 0 {
			prev = next.value
			next.value = value
			m.stats.Replaces++
			return prev, true, nil
		}
	}

	height := m.randomHeight()
	nn := m.newNode(height, key, value)
	if nn == nil {
		return prev, false, ErrAllocatorExhausted
	}

	if height > headH {
		m.growHead(nn)
	}

	minH := headH
	if height < minH {
		minH = height
	}
	for i := 0; i < minH; i++ {
		nn.next[i] = prevs[i].next[i]
		prevs[i].next[i] = nn
	}

	m.length++
	m.stats.Inserts++
	return prev, false, nil
}

// growHead extends the head to the new node's height. The added levels link
// head -> nn -> end; nn's pointers there were already set to the end marker
// by newNode, and the lower levels are linked by the caller. The head node
// object is reused, so predecessor slices captured before the growth remain
// valid.
func (m *Map[K, V]) growHead(nn *Node[K, V]) {
	oldH := len(m.head.next)
	for i := oldH; i < len(nn.next); i++ {
		m.head.next = append(m.head.next, nn)
	}
	m.stats.HeadGrowths++
	m.logger.Debug("head grown", zap.Int("from", oldH), zap.Int("to", len(m.head.next)))
}

// Delete removes the first entry equal to key and returns its value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var zero V
	headH := len(m.head.next)
	var prevsBuf [MaxHeightLimit]*Node[K, V]
	prevs := prevsBuf[:headH]
	m.findPrevs(key, prevs)

	doomed := prevs[0].next[0]
	if doomed.isEnd() || m.cmp(doomed.key, key) != 0 {
		return zero, false
	}

	for i := 0; i < len(doomed.next); i++ {
		prevs[i].next[i] = doomed.next[i]
	}
	value := doomed.value
	m.length--
	m.stats.Deletes++
	m.release(doomed)
	return value, true
}

// DeleteAll removes every entry equal to key, invoking dispose once per entry
// in list order. A nil dispose just discards the run. Absent keys are a
// no-op.
func (m *Map[K, V]) DeleteAll(key K, dispose DisposeFunc[K, V]) {
	headH := len(m.head.next)
	var prevsBuf, nextsBuf [MaxHeightLimit]*Node[K, V]
	prevs := prevsBuf[:headH]
	m.findPrevs(key, prevs)

	doomed := prevs[0].next[0]
	if doomed.isEnd() || m.cmp(doomed.key, key) != 0 {
		return
	}

	// For every level the run touches, nexts ends up holding the first node
	// past the last doomed node linked there; rewriting it at each doomed
	// node leaves exactly that behind.
	tdh := 0
	nexts := nextsBuf[:headH]
	for i := range nexts {
		nexts[i] = m.tail
	}

	removed := 0
	for {
		next := doomed.next[0]
		if h := len(doomed.next); h > tdh {
			tdh = h
		}
		for i := 0; i < len(doomed.next); i++ {
			nexts[i] = doomed.next[i]
		}

		if dispose != nil {
			dispose(doomed.key, doomed.value)
		}
		m.length--
		m.stats.Deletes++
		m.release(doomed)
		removed++

		if next.isEnd() || m.cmp(next.key, key) != 0 {
			break
		}
		doomed = next
	}

	for i := 0; i < tdh; i++ {
		prevs[i].next[i] = nexts[i]
	}
	m.logger.Debug("equal-key run removed", zap.Int("entries", removed), zap.Int("tallest", tdh))
}

// PopFirst removes and returns the smallest entry.
func (m *Map[K, V]) PopFirst() (K, V, bool) {
	var zeroK K
	var zeroV V
	first := m.head.next[0]
	if first.isEnd() {
		return zeroK, zeroV, false
	}

	for i := 0; i < len(first.next); i++ {
		m.head.next[i] = first.next[i]
	}
	key, value := first.key, first.value
	m.length--
	m.stats.Deletes++
	m.release(first)
	return key, value, true
}

// PopLast removes and returns the largest entry. The descent records, per
// level, the node that will precede the end once the last node is unlinked,
// so it stops two links short of the end marker instead of one.
func (m *Map[K, V]) PopLast() (K, V, bool) {
	var zeroK K
	var zeroV V
	if m.length == 0 {
		return zeroK, zeroV, false
	}

	headH := len(m.head.next)
	var prevsBuf [MaxHeightLimit]*Node[K, V]
	prevs := prevsBuf[:headH]

	cur := m.head
	lvl := headH - 1
	for lvl >= 0 {
		next := cur.next[lvl]
		if next.isEnd() || next.next[lvl].isEnd() {
			prevs[lvl] = cur
			lvl--
		} else {
			cur = next
		}
	}

	last := cur.next[0]
	for i := 0; i < len(last.next); i++ {
		prevs[i].next[i] = m.tail
	}
	key, value := last.key, last.value
	m.length--
	m.stats.Deletes++
	m.release(last)
	return key, value, true
}

// Clear removes every entry, invoking dispose per entry, and returns how many
// were removed. The head keeps its grown height.
func (m *Map[K, V]) Clear(dispose DisposeFunc[K, V]) int {
	removed := 0
	cur := m.head.next[0]
	for !cur.isEnd() {
		doomed := cur
		cur = doomed.next[0]
		if dispose != nil {
			dispose(doomed.key, doomed.value)
		}
		m.stats.Deletes++
		m.release(doomed)
		removed++
	}
	for i := range m.head.next {
		m.head.next[i] = m.tail
	}
	m.length = 0
	m.logger.Debug("cleared", zap.Int("entries", removed))
	return removed
}

// Destroy clears the map, releases the head back to the allocator and returns
// the number of entries disposed. The map must not be used afterwards;
// Validate reports ErrMalformedList for it.
func (m *Map[K, V]) Destroy(dispose DisposeFunc[K, V]) int {
	removed := m.Clear(dispose)
	m.release(m.head)
	m.head = nil
	m.tail = nil
	m.cmp = nil
	m.logger.Debug("destroyed", zap.Int("entries", removed))
	return removed
}
