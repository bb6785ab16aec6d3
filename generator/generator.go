package generator

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/noisefield/field"
	"github.com/pthm-cable/noisefield/noise"
)

// ErrInvalidOctaves reports a fractal request with octaves <= 0.
var ErrInvalidOctaves = errors.New("generator: octaves must be >= 1")

// Generate produces a field from the parameter bundle. Tables are built
// once from the seed before evaluation and shared read-only across
// workers, so repeated calls with identical params yield bit-identical
// output. Either a fully evaluated field is returned or an error; never
// a partial result.
func Generate(p Params) (*field.Field, error) {
	fn, err := kernel(p)
	if err != nil {
		return nil, err
	}
	return field.Evaluate(p.Width, p.Height, fn)
}

// kernel builds the per-pixel evaluation closure for the given params.
//
// Lattice kernels sample at pixel centers ((px+0.5)*scale) so a scale of
// 1.0 does not degenerate to lattice points. Worley and White operate on
// pixel coordinates directly.
func kernel(p Params) (func(x, y int) float32, error) {
	switch p.Type {
	case Perlin:
		k := noise.NewPerlin(p.Seed)
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil

	case PerlinFractal:
		if p.Octaves <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidOctaves, p.Octaves)
		}
		k := noise.NewPerlin(p.Seed)
		return func(x, y int) float32 {
			return float32(noise.FBM(k.At, center(x, p.Scale), center(y, p.Scale),
				p.Octaves, p.Lacunarity, p.Gain, 1, 1))
		}, nil

	case Fractal:
		// Generic Perlin-backed fractal honoring the starting
		// amplitude and frequency from the bundle.
		if p.Octaves <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidOctaves, p.Octaves)
		}
		k := noise.NewPerlin(p.Seed)
		return func(x, y int) float32 {
			return float32(noise.FBM(k.At, center(x, p.Scale), center(y, p.Scale),
				p.Octaves, p.Lacunarity, p.Gain, p.Amplitude, p.Frequency))
		}, nil

	case Simplex:
		k := noise.NewSimplex(p.Seed)
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil

	case SimplexFractal:
		if p.Octaves <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidOctaves, p.Octaves)
		}
		k := noise.NewSimplex12(p.Seed)
		return func(x, y int) float32 {
			return float32(noise.FBM(k.At, center(x, p.Scale), center(y, p.Scale),
				p.Octaves, p.Lacunarity, p.Gain, 1, 1))
		}, nil

	case Worley:
		k := noise.NewWorley(p.Seed, p.Width, p.Height, p.NumCells,
			p.NumFeatures, p.Jitter, p.Distance)
		return func(x, y int) float32 {
			return float32(k.At(x, y))
		}, nil

	case White:
		k := noise.NewWhite(p.Seed, p.Amplitude, p.Bias)
		return func(x, y int) float32 {
			return float32(k.At(x, y))
		}, nil

	case Value:
		k := noise.NewValue(p.Seed)
		if p.Octaves > 1 {
			return func(x, y int) float32 {
				return float32(noise.FBM(k.At, center(x, p.Scale), center(y, p.Scale),
					p.Octaves, p.Lacunarity, p.Gain, 1, 1))
			}, nil
		}
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil

	case Wavelet:
		k := noise.NewWavelet(p.Seed)
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil

	case Gradient:
		k := noise.NewGradient(p.Seed, p.Amplitude)
		sf := p.Scale * p.Frequency
		return func(x, y int) float32 {
			return float32(k.At((float64(x)+p.OffsetX)*sf, (float64(y)+p.OffsetY)*sf))
		}, nil

	case SparseConvolution:
		k := noise.NewSparseConv(p.Seed, p.KernelSize)
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil

	case Gabor:
		k := noise.NewGabor(p.Orientation, p.AspectRatio, p.Frequency,
			p.Phase, p.Amplitude)
		return func(x, y int) float32 {
			return float32(k.At(center(x, p.Scale), center(y, p.Scale)))
		}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, p.Type)
}

func center(px int, scale float64) float64 {
	return (float64(px) + 0.5) * scale
}
