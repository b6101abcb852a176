package skiplist

import (
	"math/bits"
	"math/rand/v2"
)

const float64Unit = 1.0 / (1 << 53)

// Seed replaces the map's random source with a PCG stream seeded from seed.
// Height generation is the only consumer of randomness, so reseeding makes
// the shape of the insertions that follow reproducible.
func (m *Map[K, V]) Seed(seed uint64) {
	m.src = rand.NewPCG(seed, seed)
}

func (m *Map[K, V]) randomHeight() int {
	h := 1
	maxHeight := m.maxHeight
	if maxHeight <= 1 {
		return h
	}

	if m.p == DefaultProbability {
		// One draw carries enough bits: the length of the trailing zero
		// run is geometrically distributed with p = 1/2.
		zeros := bits.TrailingZeros64(m.src.Uint64())
		if zeros > maxHeight-1 {
			zeros = maxHeight - 1
		}
		return h + zeros
	}

	for h < maxHeight {
		randFloat := float64(m.src.Uint64()>>11) * float64Unit
		if randFloat >= m.p {
			break
		}
		h++
	}
	return h
}
