package lsp

import "math"

// Shape is the adhering contract. Every implementation can always answer Area.
type Shape interface {
	Name() string
	Area() float64
}

// Square has a single side length. It is not a kind of Rectangle.
type Square struct{ Side float64 }

func (Square) Name() string    { return "square" }
func (s Square) Area() float64 { return s.Side * s.Side }

// Circle has a radius.
type Circle struct{ Radius float64 }

func (Circle) Name() string    { return "circle" }
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Rectangle has independent width and height.
type Rectangle struct{ Width, Height float64 }

func (Rectangle) Name() string    { return "rectangle" }
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// TotalArea sums the area of any mix of shapes.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
