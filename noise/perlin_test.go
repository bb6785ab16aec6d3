package noise

import (
	"math"
	"testing"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(42)
	b := NewPerlin(42)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			fx := (float64(x) + 0.5) * 0.13
			fy := (float64(y) + 0.5) * 0.13
			if av, bv := a.At(fx, fy), b.At(fx, fy); av != bv {
				t.Fatalf("At(%v,%v): %v != %v", fx, fy, av, bv)
			}
		}
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(42)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := p.At(float64(x)*0.37, float64(y)*0.37)
			if math.Abs(v) > 1 {
				t.Fatalf("At(%d,%d) = %v, outside [-1,1]", x, y, v)
			}
		}
	}
}

func TestPerlinSeedsDiffer(t *testing.T) {
	a := NewPerlin(42)
	b := NewPerlin(43)

	differ := false
	for i := 0; i < 16 && !differ; i++ {
		fx := (float64(i) + 0.5) * 0.31
		if a.At(fx, fx) != b.At(fx, fx) {
			differ = true
		}
	}
	if !differ {
		t.Error("seeds 42 and 43 produced identical samples")
	}
}

func TestPerlinContinuity(t *testing.T) {
	// Adjacent samples of a smooth kernel must not jump.
	p := NewPerlin(7)
	const step = 0.001
	prev := p.At(3.0, 4.0)
	for i := 1; i <= 100; i++ {
		v := p.At(3.0+float64(i)*step, 4.0)
		if math.Abs(v-prev) > 0.05 {
			t.Fatalf("discontinuity at step %d: %v -> %v", i, prev, v)
		}
		prev = v
	}
}

func BenchmarkPerlin(b *testing.B) {
	p := NewPerlin(42)
	for i := 0; i < b.N; i++ {
		p.At(float64(i)*0.01, float64(i)*0.013)
	}
}
