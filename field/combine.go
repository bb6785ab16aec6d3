package field

import (
	"errors"
	"fmt"
)

// CombineMethod selects how Combine folds values across fields.
type CombineMethod int

const (
	Add CombineMethod = iota
	Subtract
	Average
	Multiply
)

func (m CombineMethod) String() string {
	switch m {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Average:
		return "average"
	case Multiply:
		return "multiply"
	}
	return "unknown"
}

// ErrUnknownMethod reports a combine method with no implementation.
var ErrUnknownMethod = errors.New("field: unknown combine method")

// ParseCombineMethod maps a config string to a CombineMethod.
func ParseCombineMethod(s string) (CombineMethod, error) {
	switch s {
	case "add":
		return Add, nil
	case "subtract":
		return Subtract, nil
	case "average":
		return Average, nil
	case "multiply":
		return Multiply, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Combine merges the fields pixel-wise in input order: Add sums,
// Subtract left-folds v0 - v1 - ... - vN, Multiply takes the product,
// Average divides the sum by the field count. All inputs must share the
// same dimensions. Inputs are never mutated.
func Combine(method CombineMethod, fields ...*Field) (*Field, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrShapeMismatch)
	}

	first := fields[0]
	for i, f := range fields[1:] {
		if f.W != first.W || f.H != first.H {
			return nil, fmt.Errorf("%w: field %d is %dx%d, want %dx%d",
				ErrShapeMismatch, i+1, f.W, f.H, first.W, first.H)
		}
	}

	switch method {
	case Add, Subtract, Average, Multiply:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, method)
	}

	out, err := New(first.W, first.H)
	if err != nil {
		return nil, err
	}

	invN := float32(1) / float32(len(fields))
	parallelFor(len(out.Data), func(start, end int) {
		for i := start; i < end; i++ {
			acc := fields[0].Data[i]
			switch method {
			case Add, Average:
				for _, f := range fields[1:] {
					acc += f.Data[i]
				}
				if method == Average {
					acc *= invN
				}
			case Subtract:
				for _, f := range fields[1:] {
					acc -= f.Data[i]
				}
			case Multiply:
				for _, f := range fields[1:] {
					acc *= f.Data[i]
				}
			}
			out.Data[i] = acc
		}
	})

	return out, nil
}
