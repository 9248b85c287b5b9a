package lsp

import (
	"errors"
	"math"
	"strconv"
)

// Shape kinds understood by NewShape.
const (
	KindSquare    = "square"
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// ErrNegativeDimension is returned when a shape dimension is below zero.
var ErrNegativeDimension = errors.New("lsp: negative dimension")

// ErrNonFiniteDimension is returned when a shape dimension is NaN or infinite.
var ErrNonFiniteDimension = errors.New("lsp: dimension must be finite")

// UnknownShapeError is returned by NewShape for an unrecognized kind.
type UnknownShapeError struct{ Kind string }

// Error implements the error interface.
func (e UnknownShapeError) Error() string {
	// Example: lsp: unknown shape "hexagon"
	return "lsp: unknown shape " + strconv.Quote(e.Kind)
}

// DimensionError is returned when the number of dimensions does not fit the kind.
type DimensionError struct {
	Kind string
	Want int
	Got  int
}

// Error implements the error interface.
func (e DimensionError) Error() string {
	// Example: lsp: shape "circle" wants 1 dimension(s), got 2
	return "lsp: shape " + strconv.Quote(e.Kind) + " wants " + strconv.Itoa(e.Want) +
		" dimension(s), got " + strconv.Itoa(e.Got)
}

var shapeArity = map[string]int{
	KindSquare:    1,
	KindCircle:    1,
	KindRectangle: 2,
}

// NewShape builds a Shape from its kind and dimensions:
// square(side), circle(radius), rectangle(width, height).
func NewShape(kind string, dims ...float64) (Shape, error) {
	want, ok := shapeArity[kind]
	if !ok {
		return nil, UnknownShapeError{Kind: kind}
	}
	if len(dims) != want {
		return nil, DimensionError{Kind: kind, Want: want, Got: len(dims)}
	}
	for _, d := range dims {
		if d < 0 {
			return nil, ErrNegativeDimension
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, ErrNonFiniteDimension
		}
	}

	switch kind {
	case KindSquare:
		return Square{Side: dims[0]}, nil
	case KindCircle:
		return Circle{Radius: dims[0]}, nil
	default:
		return Rectangle{Width: dims[0], Height: dims[1]}, nil
	}
}
