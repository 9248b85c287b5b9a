package dip

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Registry resolves senders by channel at build time.
//
// It is intentionally:
// - read-only
// - side effect free
// - build-time only
type Registry interface {
	Resolve(channel string) (s Sender, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("dip: panic during Resolve")

// UnknownChannelError is returned when no sender is registered for a channel.
type UnknownChannelError struct{ Channel string }

// Error implements the error interface.
func (e UnknownChannelError) Error() string {
	// Example: dip: unknown channel "fax"
	return "dip: unknown channel " + strconv.Quote(e.Channel)
}

// SenderRegistry is a simple in-memory Registry keyed by Sender.Channel().
type SenderRegistry struct {
	items map[string]Sender
}

func NewSenderRegistry() *SenderRegistry {
	return &SenderRegistry{items: map[string]Sender{}}
}

// Provide stores s under its channel and returns the registry for chaining.
// A nil sender is ignored.
func (r *SenderRegistry) Provide(s Sender) *SenderRegistry {
	if s == nil {
		return r
	}
	r.items[s.Channel()] = s
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *SenderRegistry) Resolve(channel string) (s Sender, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	s, ok = r.items[channel]
	return s, ok, nil
}

// Get returns the sender for channel if present.
func (r *SenderRegistry) Get(channel string) (Sender, error) {
	s, ok := r.items[channel]
	if !ok {
		return nil, UnknownChannelError{Channel: channel}
	}
	return s, nil
}

// MustGet returns the sender or panics. Useful in demos where a missing channel
// is a wiring bug.
func (r *SenderRegistry) MustGet(channel string) Sender {
	s, err := r.Get(channel)
	if err != nil {
		panic(err)
	}
	return s
}

// Channels returns the registered channels in lexical order.
func (r *SenderRegistry) Channels() []string {
	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// All returns the registered senders ordered by channel.
func (r *SenderRegistry) All() []Sender {
	chans := r.Channels()
	out := make([]Sender, 0, len(chans))
	for _, c := range chans {
		out = append(out, r.items[c])
	}
	return out
}
