package skiplist

import (
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Comparator compares a and b and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// Any total order works; the map keeps its entries sorted by it. The
// comparator must be deterministic for the lifetime of the map.
type Comparator[K any] func(a, b K) int

// IntAscending orders int keys from smallest to largest.
//
//	m, err := New[int, string](IntAscending)
func IntAscending(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// IntDescending orders int keys from largest to smallest.
//
//	m, err := New[int, string](IntDescending)
func IntDescending(a, b int) int {
	if a > b {
		return -1
	}
	if a < b {
		return 1
	}
	return 0
}

// DisposeFunc is called once for every entry removed by DeleteAll, Clear or
// Destroy, before the entry's node is released to the allocator.
type DisposeFunc[K, V any] func(key K, value V)

// VisitFunc receives entries during ForEach and ForEachFrom walks.
// Returning false stops the walk.
type VisitFunc[K, V any] func(key K, value V) bool

const (
	// DefaultMaxHeight bounds node height when WithMaxHeight is not given.
	DefaultMaxHeight = 32

	// MaxHeightLimit is the largest value WithMaxHeight accepts.
	MaxHeightLimit = 64

	// DefaultProbability is the chance a node is promoted one level higher.
	DefaultProbability = 0.5
)

var (
	// ErrNilComparator is returned by New when no comparator is given.
	ErrNilComparator = errors.New("comparator is required")

	// ErrInvalidConfig is returned by New when an option carries an
	// unusable value.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrAllocatorExhausted is returned when the allocator cannot produce
	// a node. The failed operation leaves the map unchanged.
	ErrAllocatorExhausted = errors.New("allocator exhausted")

	// ErrMalformedList is returned by Validate when the internal structure
	// is broken, and for a map that has been destroyed.
	ErrMalformedList = errors.New("malformed skip list")
)

type config struct {
	maxHeight int
	p         float64
	source    rand.Source
	seed      uint64
	seeded    bool
	logger    *zap.Logger
	alloc     any
}

func defaultConfig() config {
	return config{
		maxHeight: DefaultMaxHeight,
		p:         DefaultProbability,
	}
}

// Option adjusts a Map at construction time.
type Option func(*config)

// WithMaxHeight caps node height. Generated heights are clamped to it and the
// head never grows past it. Valid range is [1, MaxHeightLimit].
func WithMaxHeight(h int) Option {
	return func(c *config) { c.maxHeight = h }
}

// WithProbability sets the per-level promotion probability, in (0, 1).
// Values other than DefaultProbability switch height generation from a single
// draw to one draw per level.
func WithProbability(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithRandSource supplies the source that drives height generation. The map
// reads it without synchronization. Takes precedence over WithSeed.
func WithRandSource(src rand.Source) Option {
	return func(c *config) { c.source = src }
}

// WithSeed seeds the map's own PCG source deterministically, making the shape
// of a fixed insertion sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithLogger installs a logger for debug-level structural traces such as head
// growth and run deletion. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithAllocator installs a node allocator, such as a PoolAllocator. The
// allocator's type parameters must match the map's; New reports
// ErrInvalidConfig on a mismatch.
func WithAllocator[K, V any](alloc Allocator[K, V]) Option {
	return func(c *config) { c.alloc = alloc }
}
