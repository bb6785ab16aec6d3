package noise

import "math"

// Gradient is explicit 2D lattice gradient noise: corner gradients are
// dot-producted with the local offset and bilinearly blended, then
// scaled by amplitude. Unlike Perlin it uses the raw fractional offsets
// as blend weights, no fade curve.
type Gradient struct {
	perm      [2 * tableSize]int
	grad      [2 * tableSize][2]float64
	amplitude float64
}

func NewGradient(seed uint32, amplitude float64) *Gradient {
	rng := NewRNG(seed)
	return &Gradient{
		perm:      newPermTable(rng),
		grad:      newGradTable(rng),
		amplitude: amplitude,
	}
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (g *Gradient) At(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	g00 := g.grad[g.perm[g.perm[X]+Y]]
	g10 := g.grad[g.perm[g.perm[X+1]+Y]]
	g01 := g.grad[g.perm[g.perm[X]+Y+1]]
	g11 := g.grad[g.perm[g.perm[X+1]+Y+1]]

	n00 := g00[0]*fx + g00[1]*fy
	n10 := g10[0]*(fx-1) + g10[1]*fy
	n01 := g01[0]*fx + g01[1]*(fy-1)
	n11 := g11[0]*(fx-1) + g11[1]*(fy-1)

	return lerp(fy, lerp(fx, n00, n10), lerp(fx, n01, n11)) * g.amplitude
}
