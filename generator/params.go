// Package generator maps a noise type tag and parameter bundle onto the
// right kernel, building seeded tables once and driving the parallel
// grid evaluator.
package generator

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/noisefield/noise"
)

// Type tags the noise algorithm to dispatch on.
type Type int

const (
	Perlin Type = iota
	PerlinFractal
	Simplex
	SimplexFractal
	Worley
	White
	Value
	Wavelet
	Fractal
	Gradient
	SparseConvolution
	Gabor
)

var typeNames = map[Type]string{
	Perlin:            "perlin",
	PerlinFractal:     "perlin_fractal",
	Simplex:           "simplex",
	SimplexFractal:    "simplex_fractal",
	Worley:            "worley",
	White:             "white",
	Value:             "value",
	Wavelet:           "wavelet",
	Fractal:           "fractal",
	Gradient:          "gradient",
	SparseConvolution: "sparse_convolution",
	Gabor:             "gabor",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ErrUnsupportedType reports a tag with no registered kernel.
var ErrUnsupportedType = errors.New("generator: unsupported noise type")

// ParseType maps a config string to a Type.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}

// ParseDistance maps a config string to a Worley distance metric.
func ParseDistance(s string) (noise.Distance, error) {
	switch s {
	case "euclidean":
		return noise.DistEuclidean, nil
	case "manhattan":
		return noise.DistManhattan, nil
	case "chebyshev":
		return noise.DistChebyshev, nil
	}
	return 0, fmt.Errorf("generator: unknown distance function %q", s)
}

// Params is the full per-generation parameter bundle. Each kernel reads
// only the subset it needs; unused fields are ignored, not validated.
type Params struct {
	Type          Type
	Width, Height int

	Seed       uint32
	Scale      float64
	Octaves    int
	Lacunarity float64
	Gain       float64
	Amplitude  float64
	Frequency  float64
	Bias       float64

	// Worley
	NumCells    int
	Jitter      float64
	NumFeatures int
	Distance    noise.Distance

	// Gabor
	Orientation float64
	AspectRatio float64
	Phase       float64

	// Sparse convolution
	KernelSize int

	// Gradient
	OffsetX, OffsetY float64
}

// Default returns the canonical parameter defaults.
func Default() Params {
	return Params{
		Type:        Perlin,
		Width:       256,
		Height:      256,
		Seed:        42,
		Scale:       1.0,
		Octaves:     4,
		Lacunarity:  2.0,
		Gain:        0.5,
		Amplitude:   1.0,
		Frequency:   1.0,
		Bias:        0.0,
		NumCells:    64,
		Jitter:      1.0,
		NumFeatures: 1,
		Distance:    noise.DistEuclidean,
		Orientation: 0,
		AspectRatio: 1.0,
		Phase:       0,
		KernelSize:  3,
	}
}
