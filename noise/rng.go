// Package noise implements the 2D noise kernels and their seeded table
// construction. Every kernel is deterministic for a given seed: tables
// are built once up front and treated as read-only during evaluation.
package noise

import "math"

// RNG is a Mulberry32 pseudo-random generator. It produces the same
// sequence for the same seed on every platform, which is the contract
// every permutation and gradient table depends on.
//
// Not safe for concurrent use; each table build owns its own instance.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Uint32 returns the next 32-bit value in the stream.
func (r *RNG) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float01 returns a uniform float64 in [0, 1).
func (r *RNG) Float01() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// IntN returns a uniform int in [0, bound). bound must be > 0.
func (r *RNG) IntN(bound int) int {
	return int(r.Uint32() % uint32(bound))
}

// UnitVector returns a random 2D unit vector from a uniform angle.
func (r *RNG) UnitVector() (float64, float64) {
	theta := r.Float01() * 2 * math.Pi
	return math.Cos(theta), math.Sin(theta)
}
