package skiplist

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestLevelCountsEmptyMap(t *testing.T) {
	m := newIntMap(t)
	if got := m.LevelCounts(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("expected [0] for a fresh map, got %v", got)
	}
}

func TestDumpRendersEveryLevel(t *testing.T) {
	src := &stubSource{values: []uint64{1, 4, 2, 1}}
	m, err := New[int, string](IntAscending, WithRandSource(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Insert(10, "a") // height 1
	m.Insert(20, "b") // height 3
	m.Insert(5, "c")  // height 2
	m.Insert(15, "d") // height 1

	var sb strings.Builder
	m.Dump(&sb, func(k int, v string) string { return fmt.Sprintf("%d:%s", k, v) })

	want := "height 3, length 4\n" +
		"L2: 20:b(3) -|\n" +
		"L1: 5:c(2) 20:b(3) -|\n" +
		"L0: 5:c(2) 10:a(1) 15:d(1) 20:b(3) -|\n"
	if got := sb.String(); got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpNilFormat(t *testing.T) {
	src := &stubSource{values: []uint64{1, 1}}
	m := newIntMap(t, WithRandSource(src))
	m.Insert(1, 10)
	m.Insert(2, 20)

	var sb strings.Builder
	m.Dump(&sb, nil)

	want := "height 1, length 2\n" +
		"L0: .(1) .(1) -|\n"
	if got := sb.String(); got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestValidateHealthyAfterChurn(t *testing.T) {
	m := newIntMap(t, WithSeed(7))
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		if err := m.Insert(r.Intn(200), i); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("after inserts: %v", err)
	}

	for i := 0; i < 200; i++ {
		m.Delete(r.Intn(200))
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("after deletes: %v", err)
	}

	for i := 0; i < 50; i++ {
		m.PopFirst()
		m.PopLast()
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("after pops: %v", err)
	}

	counts := m.LevelCounts()
	if counts[0] != m.Len() {
		t.Errorf("expected %d nodes at level 0, got %d", m.Len(), counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			t.Errorf("level %d holds more nodes than level %d: %v", i, i-1, counts)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	t.Run("keys out of order", func(t *testing.T) {
		src := &stubSource{values: []uint64{1}}
		m := newIntMap(t, WithRandSource(src))
		for _, k := range []int{1, 2, 3} {
			m.Insert(k, k)
		}

		n1 := m.head.next[0]
		n2 := n1.next[0]
		n1.key, n2.key = n2.key, n1.key

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		m := newIntMap(t)
		m.Insert(1, 10)
		m.length++

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})

	t.Run("short node linked at a high level", func(t *testing.T) {
		src := &stubSource{values: []uint64{1, 2}}
		m := newIntMap(t, WithRandSource(src))
		m.Insert(10, 1) // height 1
		m.Insert(20, 2) // height 2

		m.head.next[1] = m.head.next[0]

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})

	t.Run("node missing from the level below", func(t *testing.T) {
		src := &stubSource{values: []uint64{1, 2}}
		m := newIntMap(t, WithRandSource(src))
		m.Insert(10, 1) // height 1
		m.Insert(20, 2) // height 2

		m.head.next[0].next[0] = m.tail

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})

	t.Run("cycle", func(t *testing.T) {
		src := &stubSource{values: []uint64{1}}
		m := newIntMap(t, WithRandSource(src))
		for _, k := range []int{1, 2, 3} {
			m.Insert(k, k)
		}

		n1 := m.head.next[0]
		n2 := n1.next[0]
		n2.next[0] = n1

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})

	t.Run("nil link", func(t *testing.T) {
		m := newIntMap(t)
		m.Insert(1, 10)
		m.head.next[0].next[0] = nil

		if err := m.Validate(); !errors.Is(err, ErrMalformedList) {
			t.Errorf("expected ErrMalformedList, got %v", err)
		}
	})
}
