package noise

// Sampler is a single-octave noise function over pre-scaled coordinates.
type Sampler func(x, y float64) float64

// FBM accumulates octaves of the base sampler. Frequency is multiplied
// by lacunarity and amplitude by gain after each octave, and the total
// is normalized by the accumulated amplitude so the result stays within
// the base kernel's native range regardless of octave count.
//
// octaves must be >= 1; callers validate before dispatching here.
func FBM(base Sampler, x, y float64, octaves int, lacunarity, gain, amplitude, frequency float64) float64 {
	var total, maxValue float64
	amp := amplitude
	freq := frequency

	for i := 0; i < octaves; i++ {
		total += base(x*freq, y*freq) * amp
		maxValue += amp
		freq *= lacunarity
		amp *= gain
	}

	return total / maxValue
}
