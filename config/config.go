// Package config loads the settings of the solid CLI.
//
// Values come from, in increasing precedence: defaults, an optional config file
// (any format viper understands: TOML, YAML, JSON, ...) and SOLID_* environment
// variables. Nested keys use "_" in the environment, e.g. SOLID_KAFKA_BROKERS,
// and list values are comma separated ("kafka1:9092,kafka2:9092").
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "SOLID"

// Config holds the CLI configuration.
type Config struct {
	LogLevel string      `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Format   string      `mapstructure:"format" validate:"required,oneof=text json"`
	Output   string      `mapstructure:"output"` // "-" or empty for stdout, else a file path
	Kafka    KafkaConfig `mapstructure:"kafka"`
}

// Stdout is the Output value meaning "write demo output to standard output".
const Stdout = "-"

// WritesToStdout reports whether demo output goes to standard output rather than a file.
func (c Config) WritesToStdout() bool {
	return c.Output == "" || c.Output == Stdout
}

// KafkaConfig points the dip demo at a real broker. With no brokers the demo
// prints Kafka messages instead of publishing them.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" validate:"dive,hostname_port"`
	Topic   string   `mapstructure:"topic" validate:"required"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   "text",
		Output:   Stdout,
		Kafka:    KafkaConfig{Topic: "notifications"},
	}
}

// Load reads configuration from path (optional) and the environment, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("format", def.Format)
	v.SetDefault("output", def.Output)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", def.Kafka.Topic)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
			}
			return fmt.Errorf("config: invalid %s: %w", strings.Join(fields, ", "), err)
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
