package skiplist

// Stats holds plain operation counters accumulated by a Map. They follow the
// map's single-threaded contract and are read through the Stats method.
type Stats struct {
	// Inserts counts entries added by Insert and inserting Upserts.
	Inserts uint64
	// Replaces counts Upserts that overwrote an existing entry in place.
	Replaces uint64
	// Deletes counts entries removed, whichever operation removed them.
	Deletes uint64
	// HeadGrowths counts times the head gained levels for a taller node.
	HeadGrowths uint64
	// NodesAcquired and NodesReleased count allocator traffic, the head
	// node included.
	NodesAcquired uint64
	NodesReleased uint64
}

// Stats returns a snapshot of the map's counters. Inserts minus Deletes
// always equals Len, and NodesAcquired equals NodesReleased once the map has
// been destroyed.
func (m *Map[K, V]) Stats() Stats {
	return m.stats
}
