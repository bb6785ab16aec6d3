package noise

import "math"

// Perlin is a classic 2D gradient noise kernel. Lattice corners hash
// into a table of random unit gradients through a double permutation
// lookup; corner dot products are blended with the quintic fade curve.
// Output range is approximately [-1, 1].
type Perlin struct {
	perm [2 * tableSize]int
	grad [2 * tableSize][2]float64
}

// NewPerlin builds the permutation and gradient tables from the seed.
func NewPerlin(seed uint32) *Perlin {
	rng := NewRNG(seed)
	return &Perlin{
		perm: newPermTable(rng),
		grad: newGradTable(rng),
	}
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (p *Perlin) At(x, y float64) float64 {
	// Find unit square
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	// Relative position in square
	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	// Hash square corners into the gradient table
	g00 := p.grad[p.perm[p.perm[X]+Y]]
	g10 := p.grad[p.perm[p.perm[X+1]+Y]]
	g01 := p.grad[p.perm[p.perm[X]+Y+1]]
	g11 := p.grad[p.perm[p.perm[X+1]+Y+1]]

	n00 := g00[0]*x + g00[1]*y
	n10 := g10[0]*(x-1) + g10[1]*y
	n01 := g01[0]*x + g01[1]*(y-1)
	n11 := g11[0]*(x-1) + g11[1]*(y-1)

	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
