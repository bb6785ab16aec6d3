package noise

import "math"

// Distance selects the metric used by the Worley kernel.
type Distance int

const (
	DistEuclidean Distance = iota
	DistManhattan
	DistChebyshev
)

func (d Distance) String() string {
	switch d {
	case DistEuclidean:
		return "euclidean"
	case DistManhattan:
		return "manhattan"
	case DistChebyshev:
		return "chebyshev"
	}
	return "unknown"
}

// Worley is a cellular noise kernel. A fixed set of cell points is
// scattered over the sample domain once at construction; each pixel
// reports its distance to the Nth nearest point, normalized by the grid
// diagonal so output lands in [0, 1].
//
// Jitter is derived per (pixel, cell) pair from a stateless hash rather
// than a shared RNG, so evaluation stays deterministic and lock-free
// under parallel execution.
type Worley struct {
	seed     uint32
	points   [][2]float64
	features int
	jitter   float64
	dist     Distance
	width    int
	invDiag  float64
}

// NewWorley scatters numCells points over a width x height domain.
// features is clamped to [1, numCells].
func NewWorley(seed uint32, width, height, numCells, features int, jitter float64, dist Distance) *Worley {
	if numCells < 1 {
		numCells = 1
	}
	if features < 1 {
		features = 1
	}
	if features > numCells {
		features = numCells
	}

	rng := NewRNG(seed)
	points := make([][2]float64, numCells)
	for i := range points {
		points[i][0] = rng.Float01() * float64(width)
		points[i][1] = rng.Float01() * float64(height)
	}

	diag := math.Sqrt(float64(width*width + height*height))
	return &Worley{
		seed:     seed,
		points:   points,
		features: features,
		jitter:   jitter,
		dist:     dist,
		width:    width,
		invDiag:  1 / diag,
	}
}

// At returns the normalized Nth-nearest distance for the given pixel.
func (w *Worley) At(px, py int) float64 {
	// Sorted buffer of the smallest distances seen so far.
	nearest := make([]float64, w.features)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	pixel := int32(py*w.width + px)
	x := float64(px)
	y := float64(py)

	for c, pt := range w.points {
		cx, cy := pt[0], pt[1]
		if w.jitter != 0 {
			h := hash2(w.seed, pixel, int32(c))
			cx += (hashFloat01(h)*2 - 1) * w.jitter
			cy += (hashFloat01(hash32(h))*2 - 1) * w.jitter
		}

		d := w.distance(x-cx, y-cy)

		// Insertion into the sorted buffer
		if d < nearest[w.features-1] {
			i := w.features - 1
			for i > 0 && nearest[i-1] > d {
				nearest[i] = nearest[i-1]
				i--
			}
			nearest[i] = d
		}
	}

	return nearest[w.features-1] * w.invDiag
}

func (w *Worley) distance(dx, dy float64) float64 {
	switch w.dist {
	case DistManhattan:
		return math.Abs(dx) + math.Abs(dy)
	case DistChebyshev:
		return math.Max(math.Abs(dx), math.Abs(dy))
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}
