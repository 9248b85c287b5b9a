package dip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Run is the driver for the example. Kafka output goes through PrintWriter.
func Run(ctx context.Context, w io.Writer) error {
	return RunWith(ctx, w)
}

// RunWith is Run with extra senders registered on top of the defaults (a sender
// for an existing channel replaces the default one). The composition root uses it
// to plug in a real Kafka writer.
func RunWith(ctx context.Context, w io.Writer, extra ...Sender) error {
	fmt.Fprintln(w, "-- violating: LegacyNotifier owns its EmailClient --")
	if err := NewLegacyNotifier(w).Notify("bob@example.com", "hello"); err != nil {
		return err
	}

	fmt.Fprintln(w, "-- adhering: Notifier depends on Sender --")
	reg := NewSenderRegistry().
		Provide(EmailSender{Out: w}).
		Provide(SMSSender{Out: w}).
		Provide(NewKafkaSender(PrintWriter{Out: w, Topic: "notifications"}))
	for _, s := range extra {
		reg.Provide(s)
	}

	for _, ch := range reg.Channels() {
		s, ok, err := reg.Resolve(ch)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		n, err := NewNotifier(s)
		if err != nil {
			return err
		}
		n.SetLogger(slog.Default())
		if _, err := n.Notify(ctx, "bob@example.com", "hello via "+ch); err != nil {
			return err
		}
	}

	if _, err := reg.Get("fax"); err != nil {
		fmt.Fprintf(w, "registry: %v\n", err)
	}
	return nil
}
