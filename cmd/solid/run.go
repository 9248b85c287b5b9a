package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/solid/catalog"
	"github.com/sghaida/solid/dip"
)

var runCmd = &cobra.Command{
	Use:   "run [principle...]",
	Short: "Run demos (all of them when none is given)",
	Long: `Runs the demo for each named principle (srp, ocp, lsp, isp, dip) in the
order given, or all five in S-O-L-I-D order.`,
	RunE: runDemos,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// kafkaWriter is what the dip demo needs from a broker connection.
type kafkaWriter interface {
	dip.MessageWriter
	io.Closer
}

// newKafkaWriter is swapped in tests to avoid dialing a broker.
var newKafkaWriter = func(topic string, brokers ...string) kafkaWriter {
	return dip.NewKafkaWriter(topic, brokers...)
}

func runDemos(cmd *cobra.Command, args []string) error {
	reg := catalog.Default()

	if cfg != nil && len(cfg.Kafka.Brokers) > 0 {
		w := newKafkaWriter(cfg.Kafka.Topic, cfg.Kafka.Brokers...)
		defer func() {
			if err := w.Close(); err != nil {
				slog.Warn("closing kafka writer", "error", err)
			}
		}()

		sender := dip.NewKafkaSender(w)
		if err := reg.WithRun("dip", func(ctx context.Context, out io.Writer) error {
			return dip.RunWith(ctx, out, sender)
		}); err != nil {
			return err
		}
		slog.Info("dip demo publishes to kafka", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	}

	out := cmd.OutOrStdout()
	if cfg != nil && !cfg.WritesToStdout() {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Warn("closing output file", "path", cfg.Output, "error", err)
			}
		}()
		out = f
		slog.Debug("writing demo output to file", "path", cfg.Output)
	}

	return reg.Run(cmd.Context(), out, args...)
}
