package skiplist

// findPrevs fills prevs with the rightmost node strictly before key at every
// level. prevs must have exactly head-height entries. The mutating operations
// descend with it; plain lookups use firstEqual, which needs no predecessors.
func (m *Map[K, V]) findPrevs(key K, prevs []*Node[K, V]) {
	cur := m.head
	lvl := len(prevs) - 1
	for lvl >= 0 {
		next := cur.next[lvl]
		res := 1
		if !next.isEnd() {
			res = m.cmp(next.key, key)
		}
		if res < 0 {
			cur = next
		} else {
			prevs[lvl] = cur
			lvl--
		}
	}
}

// firstEqual returns the first node whose key compares equal to key, or nil.
// On an equal comparison the descent keeps going down instead of advancing,
// which lands on the leftmost node of an equal-key run.
func (m *Map[K, V]) firstEqual(key K) *Node[K, V] {
	cur := m.head
	lvl := len(m.head.next) - 1
	for {
		next := cur.next[lvl]
		res := 1
		if !next.isEnd() {
			res = m.cmp(next.key, key)
		}
		if res < 0 {
			cur = next
			continue
		}
		if lvl == 0 {
			if res == 0 {
				return next
			}
			return nil
		}
		lvl--
	}
}

// seekFirstGE returns the first node with key >= the given key, or the end
// marker when every key is smaller.
func (m *Map[K, V]) seekFirstGE(key K) *Node[K, V] {
	cur := m.head
	for lvl := len(m.head.next) - 1; lvl >= 0; lvl-- {
		for {
			next := cur.next[lvl]
			if next.isEnd() || m.cmp(next.key, key) >= 0 {
				break
			}
			cur = next
		}
	}
	return cur.next[0]
}

// lastNode returns the rightmost node, or nil when the list is empty. Upper
// levels may be empty after deletions, so every level is walked to its end
// before descending.
func (m *Map[K, V]) lastNode() *Node[K, V] {
	cur := m.head
	for lvl := len(m.head.next) - 1; lvl >= 0; lvl-- {
		for !cur.next[lvl].isEnd() {
			cur = cur.next[lvl]
		}
	}
	if cur == m.head {
		return nil
	}
	return cur
}
