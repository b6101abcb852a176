package skiplist

import (
	"fmt"
	"io"
)

// LevelCounts returns the number of nodes linked at each level, index 0 being
// the bottom. In a healthy map the counts never increase with height.
func (m *Map[K, V]) LevelCounts() []int {
	counts := make([]int, len(m.head.next))
	for lvl := range counts {
		for n := m.head.next[lvl]; !n.isEnd(); n = n.next[lvl] {
			counts[lvl]++
		}
	}
	return counts
}

// Dump writes a per-level rendering of the list to w, top level first. Each
// node prints as format(key, value) followed by its height in parentheses; a
// nil format prints a dot per node. Meant for debugging sessions and tests.
func (m *Map[K, V]) Dump(w io.Writer, format func(K, V) string) {
	fmt.Fprintf(w, "height %d, length %d\n", len(m.head.next), m.length)
	for lvl := len(m.head.next) - 1; lvl >= 0; lvl-- {
		fmt.Fprintf(w, "L%d:", lvl)
		for n := m.head.next[lvl]; !n.isEnd(); n = n.next[lvl] {
			if format != nil {
				fmt.Fprintf(w, " %s(%d)", format(n.key, n.value), len(n.next))
			} else {
				fmt.Fprintf(w, " .(%d)", len(n.next))
			}
		}
		fmt.Fprintln(w, " -|")
	}
}

// Validate checks the structural invariants and returns nil when they hold:
// no level links a node shorter than the level or taller than the head, keys
// never decrease along a level, every node linked at a level is also linked
// at the level below, and the bottom level holds exactly Len nodes. Any
// violation is reported wrapping ErrMalformedList.
func (m *Map[K, V]) Validate() error {
	if m.head == nil || m.tail == nil || m.cmp == nil {
		return ErrMalformedList
	}

	headH := len(m.head.next)
	var below map[*Node[K, V]]struct{}
	bottomCount := 0
	for lvl := 0; lvl < headH; lvl++ {
		seen := make(map[*Node[K, V]]struct{})
		var prev *Node[K, V]
		n := m.head.next[lvl]
		for {
			if n == nil {
				return fmt.Errorf("%w: nil link at level %d", ErrMalformedList, lvl)
			}
			if n.isEnd() {
				break
			}
			if _, dup := seen[n]; dup {
				return fmt.Errorf("%w: cycle at level %d", ErrMalformedList, lvl)
			}
			seen[n] = struct{}{}
			if len(n.next) <= lvl {
				return fmt.Errorf("%w: node of height %d linked at level %d", ErrMalformedList, len(n.next), lvl)
			}
			if len(n.next) > headH {
				return fmt.Errorf("%w: node of height %d exceeds head height %d", ErrMalformedList, len(n.next), headH)
			}
			if prev != nil && m.cmp(prev.key, n.key) > 0 {
				return fmt.Errorf("%w: keys out of order at level %d", ErrMalformedList, lvl)
			}
			if lvl > 0 {
				if _, ok := below[n]; !ok {
					return fmt.Errorf("%w: node linked at level %d but not at level %d", ErrMalformedList, lvl, lvl-1)
				}
			}
			prev = n
			n = n.next[lvl]
		}
		if lvl == 0 {
			bottomCount = len(seen)
		}
		below = seen
	}
	if bottomCount != m.length {
		return fmt.Errorf("%w: length %d but %d nodes at level 0", ErrMalformedList, m.length, bottomCount)
	}
	return nil
}
