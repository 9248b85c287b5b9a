package dip

import (
	"fmt"
	"io"
)

// EmailClient is a concrete low-level detail.
type EmailClient struct {
	out io.Writer
}

// SendEmail "delivers" a message by writing it out.
func (c *EmailClient) SendEmail(to, body string) error {
	_, err := fmt.Fprintf(c.out, "email to %s: %s\n", to, body)
	return err
}

// LegacyNotifier is the violating version: it creates and owns its EmailClient.
type LegacyNotifier struct {
	client *EmailClient
}

func NewLegacyNotifier(out io.Writer) *LegacyNotifier {
	return &LegacyNotifier{client: &EmailClient{out: out}}
}

// Notify can only ever send email.
func (n *LegacyNotifier) Notify(to, body string) error {
	if to == "" {
		return ErrNoRecipient
	}
	return n.client.SendEmail(to, body)
}
