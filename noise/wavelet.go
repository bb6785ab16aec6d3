package noise

import "math"

// Wavelet shares the lattice structure of Value noise, but each corner
// contributes its scalar multiplied by (dx+dy) of the local offset to
// that corner. This is a simplified band-limited stand-in rather than
// canonical multi-band wavelet noise; the behavior is kept as-is.
type Wavelet struct {
	perm [2 * tableSize]int
	vals [2 * tableSize]float64
}

func NewWavelet(seed uint32) *Wavelet {
	rng := NewRNG(seed)
	return &Wavelet{
		perm: newPermTable(rng),
		vals: newValueTable(rng),
	}
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (w *Wavelet) At(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	c00 := w.vals[w.perm[w.perm[X]+Y]] * (fx + fy)
	c10 := w.vals[w.perm[w.perm[X+1]+Y]] * ((fx - 1) + fy)
	c01 := w.vals[w.perm[w.perm[X]+Y+1]] * (fx + (fy - 1))
	c11 := w.vals[w.perm[w.perm[X+1]+Y+1]] * ((fx - 1) + (fy - 1))

	return lerp(fy, lerp(fx, c00, c10), lerp(fx, c01, c11))
}
