package lsp

import (
	"context"
	"fmt"
	"io"
)

// Run is the driver for the example.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "-- violating: MutableSquare substituted for MutableRectangle --")
	for _, r := range []Resizable{NewMutableRectangle(1, 1), NewMutableSquare(1)} {
		fmt.Fprintf(w, "%T stretched to 5x4: area=%g (expected 20)\n", r, Stretch(r, 5, 4))
	}

	fmt.Fprintln(w, "-- violating: BaseShape placeholder --")
	for _, s := range []AbstractShape{Hexagon{Side: 2}, Triangle{Base: 3, Height: 4}} {
		a, err := s.Area()
		if err != nil {
			fmt.Fprintf(w, "%T: %v\n", s, err)
			continue
		}
		fmt.Fprintf(w, "%T: area=%.2f\n", s, a)
	}

	fmt.Fprintln(w, "-- adhering: Shape values --")
	specs := []struct {
		kind string
		dims []float64
	}{
		{KindSquare, []float64{5}},
		{KindCircle, []float64{3}},
		{KindRectangle, []float64{5, 4}},
	}
	shapes := make([]Shape, 0, len(specs))
	for _, sp := range specs {
		s, err := NewShape(sp.kind, sp.dims...)
		if err != nil {
			return err
		}
		shapes = append(shapes, s)
		fmt.Fprintf(w, "%s: area=%.2f\n", s.Name(), s.Area())
	}
	fmt.Fprintf(w, "total area=%.2f\n", TotalArea(shapes...))

	if _, err := NewShape("hexagon", 1); err != nil {
		fmt.Fprintf(w, "factory: %v\n", err)
	}
	return nil
}
