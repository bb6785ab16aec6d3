package noise

import "math"

// Skew constants for 2D simplex noise.
const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// grad12 is the classic set of 12 lattice directions; the 2D kernels use
// only the x and y components.
var grad12 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Simplex is a 2D simplex noise kernel with a seed-shuffled permutation
// table. Output range is approximately [-1, 1].
type Simplex struct {
	perm [2 * tableSize]int

	// When set, gradients come from the fixed 12-direction set
	// (perm double lookup mod 12) instead of the 8-way hash. The
	// fractal accumulation path uses this variant.
	grad12 bool
}

// NewSimplex creates a single-octave simplex kernel.
func NewSimplex(seed uint32) *Simplex {
	return &Simplex{perm: newPermTable(NewRNG(seed))}
}

// NewSimplex12 creates the variant that selects gradients from the fixed
// 12-direction set, used under octave accumulation.
func NewSimplex12(seed uint32) *Simplex {
	s := NewSimplex(seed)
	s.grad12 = true
	return s
}

// grad2 computes the dot product of a hash-selected gradient and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func (s *Simplex) dot(hash int, x, y float64) float64 {
	if s.grad12 {
		g := grad12[hash%12]
		return g[0]*x + g[1]*y
	}
	return grad2(hash, x, y)
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (s *Simplex) At(x, y float64) float64 {
	// Skew input space to determine which simplex cell we're in
	skew := (x + y) * f2
	i := math.Floor(x + skew)
	j := math.Floor(y + skew)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Corner ordering within the cell
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255

	// Contributions from the three corners
	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * s.dot(s.perm[ii+s.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * s.dot(s.perm[ii+i1+s.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * s.dot(s.perm[ii+1+s.perm[jj+1]], x2, y2)
	}

	// Scale to [-1, 1]
	return 70.0 * (n0 + n1 + n2)
}
