package isp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Workable can do work.
type Workable interface {
	Work() string
}

// Eater can take a meal break.
type Eater interface {
	Eat() string
}

// Sleeper can rest.
type Sleeper interface {
	Sleep() string
}

// HumanWorker composes the three small capabilities.
type HumanWorker interface {
	Workable
	Eater
	Sleeper
}

// Human has every capability.
type Human struct{ Name string }

func (h Human) Work() string  { return h.Name + " is working" }
func (h Human) Eat() string   { return h.Name + " is eating" }
func (h Human) Sleep() string { return h.Name + " is sleeping" }

// Robot only works.
type Robot struct{ Model string }

func (r Robot) Work() string { return r.Model + " is working" }

var (
	_ HumanWorker = Human{}
	_ Workable    = Robot{}
)

// Manager runs shifts. It depends on Workable and only checks for Eater when it
// needs to schedule lunch.
type Manager struct{}

// Shift makes every worker work, then sends the Eaters to lunch.
func (Manager) Shift(ctx context.Context, w io.Writer, workers ...Workable) error {
	for _, wk := range workers {
		if _, err := fmt.Fprintln(w, wk.Work()); err != nil {
			return err
		}
	}
	for _, wk := range workers {
		e, ok := wk.(Eater)
		if !ok {
			slog.DebugContext(ctx, "worker skips lunch", "worker", fmt.Sprintf("%T", wk))
			continue
		}
		if _, err := fmt.Fprintln(w, e.Eat()); err != nil {
			return err
		}
	}
	return nil
}

// Rest puts every Sleeper to bed.
func (Manager) Rest(w io.Writer, sleepers ...Sleeper) error {
	for _, s := range sleepers {
		if _, err := fmt.Fprintln(w, s.Sleep()); err != nil {
			return err
		}
	}
	return nil
}
