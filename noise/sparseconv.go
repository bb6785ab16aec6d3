package noise

import "math"

// SparseConv is sparse convolution noise: each sample sums
// Gaussian-weighted gradient contributions from every lattice point in
// a (2k+1)^2 window around it, normalized by the total weight.
type SparseConv struct {
	perm       [2 * tableSize]int
	grad       [2 * tableSize][2]float64
	kernelSize int
}

// NewSparseConv builds the kernel; kernelSize below 1 is raised to 1.
func NewSparseConv(seed uint32, kernelSize int) *SparseConv {
	if kernelSize < 1 {
		kernelSize = 1
	}
	rng := NewRNG(seed)
	return &SparseConv{
		perm:       newPermTable(rng),
		grad:       newGradTable(rng),
		kernelSize: kernelSize,
	}
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (s *SparseConv) At(x, y float64) float64 {
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))

	var sum, wsum float64
	for oy := -s.kernelSize; oy <= s.kernelSize; oy++ {
		ly := iy + oy
		for ox := -s.kernelSize; ox <= s.kernelSize; ox++ {
			lx := ix + ox

			dx := x - float64(lx)
			dy := y - float64(ly)
			w := math.Exp(-(dx*dx + dy*dy))

			g := s.grad[s.perm[s.perm[lx&255]+(ly&255)]]
			sum += w * (g[0]*dx + g[1]*dy)
			wsum += w
		}
	}
	if wsum == 0 {
		return 0
	}
	return sum / wsum
}
