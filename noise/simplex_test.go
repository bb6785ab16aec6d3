package noise

import (
	"math"
	"testing"
)

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplex(42)
	b := NewSimplex(42)

	for i := 0; i < 256; i++ {
		fx := float64(i) * 0.17
		fy := float64(i) * 0.23
		if av, bv := a.At(fx, fy), b.At(fx, fy); av != bv {
			t.Fatalf("At(%v,%v): %v != %v", fx, fy, av, bv)
		}
	}
}

func TestSimplexRange(t *testing.T) {
	s := NewSimplex(42)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := s.At(float64(x)*0.41, float64(y)*0.41)
			if math.Abs(v) > 1.1 {
				t.Fatalf("At(%d,%d) = %v, outside nominal [-1,1]", x, y, v)
			}
		}
	}
}

func TestSimplexSeedsDiffer(t *testing.T) {
	a := NewSimplex(1)
	b := NewSimplex(2)

	differ := false
	for i := 0; i < 32 && !differ; i++ {
		fx := float64(i) * 0.29
		if a.At(fx, fx*0.7) != b.At(fx, fx*0.7) {
			differ = true
		}
	}
	if !differ {
		t.Error("seeds 1 and 2 produced identical samples")
	}
}

func TestSimplex12Variant(t *testing.T) {
	plain := NewSimplex(42)
	g12 := NewSimplex12(42)

	// Same permutation, different gradient select: values must differ
	// somewhere but both stay bounded.
	differ := false
	for i := 0; i < 64; i++ {
		fx := float64(i)*0.37 + 0.1
		fy := float64(i)*0.19 + 0.2
		pv := plain.At(fx, fy)
		gv := g12.At(fx, fy)
		if math.Abs(gv) > 1.5 {
			t.Fatalf("grad12 At(%v,%v) = %v, unbounded", fx, fy, gv)
		}
		if pv != gv {
			differ = true
		}
	}
	if !differ {
		t.Error("grad12 variant identical to 8-way hash variant")
	}
}

func BenchmarkSimplex(b *testing.B) {
	s := NewSimplex(42)
	for i := 0; i < b.N; i++ {
		s.At(float64(i)*0.01, float64(i)*0.013)
	}
}
