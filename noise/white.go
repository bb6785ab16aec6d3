package noise

// White is spatially incoherent noise: every pixel is an independent
// uniform draw in [0,1), scaled by amplitude and shifted by bias. The
// draw is keyed by pixel coordinate so evaluation order never matters.
type White struct {
	seed      uint32
	amplitude float64
	bias      float64
}

func NewWhite(seed uint32, amplitude, bias float64) *White {
	return &White{seed: seed, amplitude: amplitude, bias: bias}
}

// At returns the value for the given pixel.
func (w *White) At(px, py int) float64 {
	return hashFloat01(hash2(w.seed, int32(px), int32(py)))*w.amplitude + w.bias
}
