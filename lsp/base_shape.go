package lsp

import (
	"errors"
	"math"
)

// ErrAreaNotImplemented is returned by BaseShape.Area when an embedding type did
// not provide its own Area.
var ErrAreaNotImplemented = errors.New("lsp: area not implemented")

// AbstractShape is the violating contract: Area may fail because some
// implementations only inherit a placeholder.
type AbstractShape interface {
	Area() (float64, error)
}

// BaseShape plays the role of an abstract base: its Area always fails.
type BaseShape struct{}

func (BaseShape) Area() (float64, error) { return 0, ErrAreaNotImplemented }

// Triangle embeds BaseShape and never overrides Area.
type Triangle struct {
	BaseShape
	Base, Height float64
}

// Hexagon embeds BaseShape and does override Area.
type Hexagon struct {
	BaseShape
	Side float64
}

func (h Hexagon) Area() (float64, error) {
	return 3 * math.Sqrt(3) / 2 * h.Side * h.Side, nil
}
