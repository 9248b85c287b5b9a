package dip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Notifier is the high-level policy. It knows nothing about email, SMS or Kafka.
type Notifier struct {
	sender Sender
	logger *slog.Logger // optional
}

// NewNotifier wires the Sender in through the constructor.
func NewNotifier(s Sender) (*Notifier, error) {
	if s == nil {
		return nil, ErrNilSender
	}
	return &Notifier{sender: s}, nil
}

// SetLogger wires the optional logger.
func (n *Notifier) SetLogger(l *slog.Logger) { n.logger = l }

// Notify builds a message and hands it to the Sender.
func (n *Notifier) Notify(ctx context.Context, to, body string) (Message, error) {
	msg, err := NewMessage(to, body)
	if err != nil {
		return Message{}, err
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("dip: %s: %w", n.sender.Channel(), err)
	}
	if n.logger != nil {
		n.logger.DebugContext(ctx, "notification sent",
			"channel", n.sender.Channel(),
			"message_id", msg.ID.String())
	}
	return msg, nil
}

// Broadcast notifies to on every sender. It keeps going after a failure and
// returns all failures joined.
func Broadcast(ctx context.Context, to, body string, senders ...Sender) error {
	var errs []error
	for _, s := range senders {
		n, err := NewNotifier(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := n.Notify(ctx, to, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
