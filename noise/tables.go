package noise

// Table construction is a single seeded pass: the permutation is shuffled
// first, then any gradient or value table is drawn from the same RNG.
// This ordering is part of the determinism contract and is pinned by tests.

const tableSize = 256

// newPermTable builds a 512-entry permutation table: a seeded Fisher-Yates
// shuffle of 0..255 duplicated into the upper half so double lookups never
// need an explicit wrap.
func newPermTable(rng *RNG) [2 * tableSize]int {
	var p [tableSize]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	var perm [2 * tableSize]int
	for i := 0; i < tableSize; i++ {
		perm[i] = p[i]
		perm[i+tableSize] = p[i]
	}
	return perm
}

// newGradTable builds 256 random 2D unit vectors duplicated to 512,
// indexed through the permutation table for spatial hashing.
func newGradTable(rng *RNG) [2 * tableSize][2]float64 {
	var g [2 * tableSize][2]float64
	for i := 0; i < tableSize; i++ {
		x, y := rng.UnitVector()
		g[i] = [2]float64{x, y}
		g[i+tableSize] = g[i]
	}
	return g
}

// newValueTable builds 256 uniform scalars in [0,1) duplicated to 512.
func newValueTable(rng *RNG) [2 * tableSize]float64 {
	var v [2 * tableSize]float64
	for i := 0; i < tableSize; i++ {
		v[i] = rng.Float01()
		v[i+tableSize] = v[i]
	}
	return v
}
