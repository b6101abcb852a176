package skiplist

import "testing"

func TestPoolAllocatorZeroesReleasedNodes(t *testing.T) {
	alloc := NewPoolAllocator[int, string]()

	n := alloc.Acquire(3, 42, "payload")
	if n.Height() != 3 {
		t.Fatalf("expected height 3, got %d", n.Height())
	}
	other := alloc.Acquire(1, 1, "x")
	n.next[0] = other

	alloc.Release(n)

	if n.key != 0 || n.value != "" {
		t.Errorf("expected key and value to be zeroed, got (%d, %q)", n.key, n.value)
	}
	for i, link := range n.next[:cap(n.next)] {
		if link != nil {
			t.Errorf("expected link %d to be nil after release", i)
		}
	}
}

func TestPoolAllocatorReusesCapacity(t *testing.T) {
	alloc := NewPoolAllocator[int, int]()

	tall := alloc.Acquire(6, 1, 1)
	alloc.Release(tall)

	short := alloc.Acquire(2, 2, 2)
	if short.Height() != 2 {
		t.Errorf("expected height 2, got %d", short.Height())
	}

	alloc.Release(short)
	taller := alloc.Acquire(8, 3, 3)
	if taller.Height() != 8 {
		t.Errorf("expected height 8, got %d", taller.Height())
	}
	if taller.Key() != 3 || taller.Value() != 3 {
		t.Errorf("expected the node to carry its new entry, got (%d, %d)", taller.Key(), taller.Value())
	}
}

func TestPoolAllocatorNilRelease(t *testing.T) {
	alloc := NewPoolAllocator[int, int]()
	alloc.Release(nil)
}
