package isp

import (
	"errors"
	"strconv"
)

// ErrUnsupported is returned by implementations of the fat Worker interface for
// methods that make no sense for them.
var ErrUnsupported = errors.New("isp: capability not supported")

// UnsupportedError names the worker and capability that failed.
type UnsupportedError struct {
	Worker     string
	Capability string
}

// Error implements the error interface.
func (e UnsupportedError) Error() string {
	// Example: isp: "R2" cannot "eat"
	return "isp: " + strconv.Quote(e.Worker) + " cannot " + strconv.Quote(e.Capability)
}

// Unwrap lets errors.Is match ErrUnsupported.
func (e UnsupportedError) Unwrap() error { return ErrUnsupported }

// Worker is the violating fat interface.
type Worker interface {
	Work() (string, error)
	Eat() (string, error)
	Sleep() (string, error)
}

// LegacyHuman implements all of Worker.
type LegacyHuman struct{ Name string }

func (h LegacyHuman) Work() (string, error)  { return h.Name + " is working", nil }
func (h LegacyHuman) Eat() (string, error)   { return h.Name + " is eating", nil }
func (h LegacyHuman) Sleep() (string, error) { return h.Name + " is sleeping", nil }

// LegacyRobot is forced to provide Eat and Sleep.
type LegacyRobot struct{ Model string }

func (r LegacyRobot) Work() (string, error) { return r.Model + " is working", nil }

func (r LegacyRobot) Eat() (string, error) {
	return "", UnsupportedError{Worker: r.Model, Capability: "eat"}
}

func (r LegacyRobot) Sleep() (string, error) {
	return "", UnsupportedError{Worker: r.Model, Capability: "sleep"}
}

// LunchBreak sends every worker to lunch and collects the lines and failures.
func LunchBreak(workers ...Worker) ([]string, error) {
	var (
		lines []string
		errs  []error
	)
	for _, w := range workers {
		line, err := w.Eat()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Join(errs...)
}
