package noise

import (
	"math"
	"testing"
)

func TestRNGPinnedSequence(t *testing.T) {
	// First outputs for seed 42, fixed forever: every table build
	// depends on this sequence.
	want := []uint32{2581720956, 1925393290, 3661312704, 2876485805}

	rng := NewRNG(42)
	for i, w := range want {
		if got := rng.Uint32(); got != w {
			t.Errorf("Uint32() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)
	for i := 0; i < 1000; i++ {
		if av, bv := a.Uint32(), b.Uint32(); av != bv {
			t.Fatalf("sequence diverged at %d: %d != %d", i, av, bv)
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint32() == b.Uint32() {
			same++
		}
	}
	if same > 2 {
		t.Errorf("seeds 1 and 2 collided on %d of 100 outputs", same)
	}
}

func TestRNGFloat01Range(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 10000; i++ {
		v := rng.Float01()
		if v < 0 || v >= 1 {
			t.Fatalf("Float01() = %v, want [0,1)", v)
		}
	}
}

func TestRNGIntNRange(t *testing.T) {
	rng := NewRNG(7)
	for _, bound := range []int{1, 2, 10, 256} {
		for i := 0; i < 1000; i++ {
			v := rng.IntN(bound)
			if v < 0 || v >= bound {
				t.Fatalf("IntN(%d) = %d", bound, v)
			}
		}
	}
}

func TestRNGUnitVector(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 100; i++ {
		x, y := rng.UnitVector()
		if l := math.Hypot(x, y); math.Abs(l-1) > 1e-12 {
			t.Fatalf("UnitVector() length = %v", l)
		}
	}
}
