package noise

// hash32 mixes a 32-bit input into a well-distributed 32-bit output
// (murmur finalizer style avalanching). Stable across versions; no
// dependence on math/rand.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// hash2 returns a stable hash for a 2D integer coordinate plus seed.
// Large odd constants decorrelate the axes.
func hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return hash32(h)
}

// hashFloat01 maps a hash to a uniform float64 in [0, 1).
func hashFloat01(h uint32) float64 {
	return float64(h) / 4294967296.0
}
