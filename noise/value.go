package noise

import "math"

// Value is lattice value noise: four hashed corner scalars, bilinearly
// interpolated. Output range is [0, 1).
type Value struct {
	perm [2 * tableSize]int
	vals [2 * tableSize]float64
}

func NewValue(seed uint32) *Value {
	rng := NewRNG(seed)
	return &Value{
		perm: newPermTable(rng),
		vals: newValueTable(rng),
	}
}

// At returns the noise value at the given (pre-scaled) coordinates.
func (v *Value) At(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	v00 := v.vals[v.perm[v.perm[X]+Y]]
	v10 := v.vals[v.perm[v.perm[X+1]+Y]]
	v01 := v.vals[v.perm[v.perm[X]+Y+1]]
	v11 := v.vals[v.perm[v.perm[X+1]+Y+1]]

	return lerp(fy, lerp(fx, v00, v10), lerp(fx, v01, v11))
}
