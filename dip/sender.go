package dip

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var (
	// ErrNoRecipient is returned when a message has no recipient.
	ErrNoRecipient = errors.New("dip: message has no recipient")

	// ErrNilSender is returned when a Notifier is built without a Sender.
	ErrNilSender = errors.New("dip: nil sender")
)

// Message is what every Sender delivers.
type Message struct {
	ID   uuid.UUID `json:"id"`
	To   string    `json:"to"`
	Body string    `json:"body"`
}

// NewMessage builds a message with a fresh ID.
func NewMessage(to, body string) (Message, error) {
	if to == "" {
		return Message{}, ErrNoRecipient
	}
	return Message{ID: uuid.New(), To: to, Body: body}, nil
}

// Sender is the abstraction both Notifier and the delivery details depend on.
type Sender interface {
	Channel() string
	Send(ctx context.Context, msg Message) error
}

// EmailSender writes "email to <to>: <body>" lines.
type EmailSender struct {
	Out io.Writer
}

func (EmailSender) Channel() string { return "email" }

func (s EmailSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.Out, "email to %s: %s\n", msg.To, msg.Body)
	return err
}

// SMSSender writes "sms to <to>: <body>" lines.
type SMSSender struct {
	Out io.Writer
}

func (SMSSender) Channel() string { return "sms" }

func (s SMSSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.Out, "sms to %s: %s\n", msg.To, msg.Body)
	return err
}
