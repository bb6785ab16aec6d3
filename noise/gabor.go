package noise

import "math"

// Gabor evaluates a single oriented Gabor kernel per pixel: a sinusoid
// along the rotated x axis under a Gaussian envelope. There is no
// scattering of random impulses; the kernel is global over the domain.
type Gabor struct {
	cosO, sinO float64
	aspect     float64
	frequency  float64
	phase      float64
	amplitude  float64
}

func NewGabor(orientation, aspect, frequency, phase, amplitude float64) *Gabor {
	return &Gabor{
		cosO:      math.Cos(orientation),
		sinO:      math.Sin(orientation),
		aspect:    aspect,
		frequency: frequency,
		phase:     phase,
		amplitude: amplitude,
	}
}

// At returns the kernel value at the given (pre-scaled) coordinates.
func (g *Gabor) At(x, y float64) float64 {
	rx := g.cosO*x + g.sinO*y
	ry := -g.sinO*x + g.cosO*y
	rx *= g.aspect

	carrier := math.Sin(2*math.Pi*g.frequency*rx + g.phase)
	envelope := math.Exp(-0.5 * (rx*rx + ry*ry))
	return g.amplitude * carrier * envelope
}
