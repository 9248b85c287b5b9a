package isp

import (
	"context"
	"fmt"
	"io"
)

// Run is the driver for the example.
func Run(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "-- violating: fat Worker interface --")
	lines, err := LunchBreak(LegacyHuman{Name: "Alice"}, LegacyRobot{Model: "R2"})
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	if err != nil {
		fmt.Fprintf(w, "lunch failed: %v\n", err)
	}

	fmt.Fprintln(w, "-- adhering: Workable / Eater / Sleeper --")
	var m Manager
	if err := m.Shift(ctx, w, Human{Name: "Alice"}, Robot{Model: "R2"}); err != nil {
		return err
	}
	return m.Rest(w, Human{Name: "Alice"})
}
