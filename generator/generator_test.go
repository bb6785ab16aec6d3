package generator

import (
	"errors"
	"testing"

	"github.com/pthm-cable/noisefield/field"
	"github.com/pthm-cable/noisefield/noise"
)

func TestGenerateDeterministicAllTypes(t *testing.T) {
	types := []Type{
		Perlin, PerlinFractal, Simplex, SimplexFractal, Worley, White,
		Value, Wavelet, Fractal, Gradient, SparseConvolution, Gabor,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			p := Default()
			p.Type = typ
			p.Width = 16
			p.Height = 16
			p.Scale = 0.1
			p.NumCells = 8

			a, err := Generate(p)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			b, err := Generate(p)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			if a.Len() != 16*16 {
				t.Fatalf("Len() = %d, want %d", a.Len(), 16*16)
			}
			for i := range a.Data {
				if a.Data[i] != b.Data[i] {
					t.Fatalf("pixel %d differs across runs: %v != %v", i, a.Data[i], b.Data[i])
				}
			}
		})
	}
}

func TestGeneratePerlinSeedSensitivity(t *testing.T) {
	p := Default()
	p.Type = Perlin
	p.Width = 4
	p.Height = 4
	p.Seed = 42
	p.Scale = 1.0

	a, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", a.Len())
	}

	p.Seed = 43
	b, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}

	differ := false
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("seeds 42 and 43 produced identical 4x4 fields")
	}
}

func TestGenerateWorleyEndToEnd(t *testing.T) {
	p := Default()
	p.Type = Worley
	p.Width = 8
	p.Height = 8
	p.Seed = 1
	p.NumCells = 4
	p.NumFeatures = 1
	p.Distance = noise.DistEuclidean

	f, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}

	distinct := map[float32]bool{}
	for i, v := range f.Data {
		if v < 0 || v > 1 {
			t.Fatalf("pixel %d = %v, want [0,1]", i, v)
		}
		distinct[v] = true
	}
	if len(distinct) < 2 {
		t.Errorf("expected at least 2 distinct values, got %d", len(distinct))
	}
}

func TestGenerateDimensionInvariant(t *testing.T) {
	for _, d := range []struct{ w, h int }{{1, 1}, {3, 7}, {64, 32}, {100, 1}} {
		p := Default()
		p.Width = d.w
		p.Height = d.h
		f, err := Generate(p)
		if err != nil {
			t.Fatalf("%dx%d: %v", d.w, d.h, err)
		}
		if f.Len() != d.w*d.h {
			t.Errorf("%dx%d: Len() = %d", d.w, d.h, f.Len())
		}
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	p := Default()
	p.Width = 0
	if _, err := Generate(p); !errors.Is(err, field.ErrInvalidDimensions) {
		t.Errorf("width 0: error = %v, want ErrInvalidDimensions", err)
	}

	p = Default()
	p.Height = -3
	if _, err := Generate(p); !errors.Is(err, field.ErrInvalidDimensions) {
		t.Errorf("height -3: error = %v, want ErrInvalidDimensions", err)
	}
}

func TestGenerateRejectsBadOctaves(t *testing.T) {
	for _, typ := range []Type{PerlinFractal, SimplexFractal, Fractal} {
		p := Default()
		p.Type = typ
		p.Octaves = 0
		if _, err := Generate(p); !errors.Is(err, ErrInvalidOctaves) {
			t.Errorf("%v octaves=0: error = %v, want ErrInvalidOctaves", typ, err)
		}

		p.Octaves = -2
		if _, err := Generate(p); !errors.Is(err, ErrInvalidOctaves) {
			t.Errorf("%v octaves=-2: error = %v, want ErrInvalidOctaves", typ, err)
		}
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	p := Default()
	p.Type = Type(99)
	if _, err := Generate(p); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestGenerateFractalStaysNormalized(t *testing.T) {
	p := Default()
	p.Type = PerlinFractal
	p.Width = 32
	p.Height = 32
	p.Scale = 0.3
	p.Octaves = 6

	f, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range f.Data {
		if v < -1 || v > 1 {
			t.Fatalf("pixel %d = %v, outside [-1,1]", i, v)
		}
	}
}

func TestGenerateWhiteRespectsAmplitudeBias(t *testing.T) {
	p := Default()
	p.Type = White
	p.Width = 16
	p.Height = 16
	p.Amplitude = 0.5
	p.Bias = 2

	f, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range f.Data {
		if v < 2 || v >= 2.5 {
			t.Fatalf("pixel %d = %v, want [2,2.5)", i, v)
		}
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range map[Type]string{
		Perlin:            "perlin",
		SimplexFractal:    "simplex_fractal",
		SparseConvolution: "sparse_convolution",
	} {
		got, err := ParseType(name)
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", name, got, err)
		}
	}

	if _, err := ParseType("voronoi"); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("ParseType(voronoi) error = %v, want ErrUnsupportedType", err)
	}
}

func BenchmarkGeneratePerlinFractal256(b *testing.B) {
	p := Default()
	p.Type = PerlinFractal
	p.Width = 256
	p.Height = 256
	p.Scale = 0.01

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
