// Package field provides the dense 2D scalar grid produced by noise
// generation, the parallel evaluator that fills it, and the per-pixel
// combiner that merges several grids into one.
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimensions reports a width or height <= 0.
	ErrInvalidDimensions = errors.New("field: width and height must be positive")
	// ErrTooLarge reports a grid whose backing slice cannot be allocated.
	ErrTooLarge = errors.New("field: grid too large")
	// ErrShapeMismatch reports combine inputs of unequal size, or none at all.
	ErrShapeMismatch = errors.New("field: shape mismatch")
)

// Field is a width x height grid of 32-bit floats in row-major order
// (index = y*W + x). Once produced by a kernel it is not mutated; the
// combiner always allocates a fresh output.
type Field struct {
	W, H int
	Data []float32
}

// New allocates a zeroed field, validating dimensions.
func New(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	// Bound the byte size, not just the element count: w*h can fit in
	// an int while 4*w*h exceeds what makeslice accepts.
	if w > (math.MaxInt/4)/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return &Field{W: w, H: h, Data: make([]float32, w*h)}, nil
}

// At returns the value at pixel (x, y). Bounds are the caller's problem.
func (f *Field) At(x, y int) float32 {
	return f.Data[y*f.W+x]
}

// Len returns the pixel count.
func (f *Field) Len() int {
	return len(f.Data)
}
