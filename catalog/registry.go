package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RunFunc is the signature every demo driver shares.
type RunFunc func(ctx context.Context, w io.Writer) error

// Principle describes one demo.
type Principle struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Summary string  `json:"summary"`
	Package string  `json:"package"`
	Run     RunFunc `json:"-"`
}

var (
	// ErrRegistryPanic is returned if a principle lookup panics internally.
	ErrRegistryPanic = errors.New("catalog: panic during Resolve")

	// ErrNilRun is returned when a principle has no driver.
	ErrNilRun = errors.New("catalog: principle has no Run function")
)

// UnknownPrincipleError is returned for keys that were never registered.
type UnknownPrincipleError struct{ Key string }

// Error implements the error interface.
func (e UnknownPrincipleError) Error() string {
	// Example: catalog: unknown principle "xyz"
	return "catalog: unknown principle " + strconv.Quote(e.Key)
}

// Registry maps keys to principles and remembers registration order.
type Registry struct {
	items map[string]Principle
	order []string
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]Principle{}}
}

// Provide stores p under its (lower-cased) key and returns the registry for chaining.
// Re-providing a key replaces the principle but keeps its original position.
func (r *Registry) Provide(p Principle) *Registry {
	key := strings.ToLower(p.Key)
	p.Key = key
	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = p
	return r
}

// WithRun replaces the driver of an already registered principle.
func (r *Registry) WithRun(key string, run RunFunc) error {
	p, err := r.Lookup(key)
	if err != nil {
		return err
	}
	p.Run = run
	r.Provide(p)
	return nil
}

// Resolve returns the principle for key and converts internal panics into errors.
func (r *Registry) Resolve(key string) (p Principle, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p = Principle{}
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	p, ok = r.items[strings.ToLower(key)]
	return p, ok, nil
}

// Get returns the principle for key if present (no error, no panic).
func (r *Registry) Get(key string) (Principle, bool) {
	p, ok := r.items[strings.ToLower(key)]
	return p, ok
}

// Lookup returns the principle or UnknownPrincipleError.
func (r *Registry) Lookup(key string) (Principle, error) {
	p, ok, err := r.Resolve(key)
	if err != nil {
		return Principle{}, err
	}
	if !ok {
		return Principle{}, UnknownPrincipleError{Key: key}
	}
	return p, nil
}

// MustGet returns the principle or panics.
func (r *Registry) MustGet(key string) Principle {
	p, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return p
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the registered principles in registration order.
func (r *Registry) All() []Principle {
	out := make([]Principle, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.items[k])
	}
	return out
}

// Run executes the demos for keys (all of them when keys is empty), each under
// a header line. It stops at the first failure.
func (r *Registry) Run(ctx context.Context, w io.Writer, keys ...string) error {
	if len(keys) == 0 {
		keys = r.Keys()
	}

	selected := make([]Principle, 0, len(keys))
	for _, k := range keys {
		p, err := r.Lookup(k)
		if err != nil {
			return err
		}
		if p.Run == nil {
			return fmt.Errorf("%w: %s", ErrNilRun, p.Key)
		}
		selected = append(selected, p)
	}

	for i, p := range selected {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s: %s ==\n", strings.ToUpper(p.Key), p.Name); err != nil {
			return err
		}
		if err := p.Run(ctx, w); err != nil {
			return fmt.Errorf("catalog: %s: %w", p.Key, err)
		}
	}
	return nil
}
