package main

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/solid/config"
	"github.com/sghaida/solid/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	format   string
	output   string

	// cfg is populated by the root PersistentPreRunE before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "solid",
	Short: "Run the SOLID design principle demos",
	Long: `solid prints a "violating" and an "adhering" version of each SOLID principle
(Single Responsibility, Open/Closed, Liskov Substitution, Interface Segregation,
Dependency Inversion) side by side.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text, json")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", `where demo output goes: "-" for stdout or a file path`)
}

// loadConfig merges file/env configuration with explicit flags and sets up logging.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if cmd.Flags().Changed("format") {
		c.Format = format
	}
	if cmd.Flags().Changed("output") {
		c.Output = output
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	logger.Setup(*c, cmd.ErrOrStderr()).Debug("configuration loaded",
		"log_level", c.LogLevel,
		"format", c.Format,
		"output", c.Output,
		"kafka_brokers", len(c.Kafka.Brokers))
	return nil
}
