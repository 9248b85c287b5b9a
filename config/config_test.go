package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// Environment-based tests use t.Setenv and therefore cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.Format, cfg.Format)
	assert.Equal(t, def.Kafka.Topic, cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, Stdout, cfg.Output)
	assert.True(t, cfg.WritesToStdout())
}

func TestLoad_File(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "solid.toml", `
log_level = "debug"
format = "json"

[kafka]
brokers = ["localhost:9092"]
topic = "alerts"
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "alerts", cfg.Kafka.Topic)
}

// TestLoad_EnvOverridesFile verifies SOLID_* wins over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "solid.yaml", "log_level: warn\nformat: text\n")
	t.Setenv("SOLID_LOG_LEVEL", "ERROR")
	t.Setenv("SOLID_KAFKA_TOPIC", "env-topic")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "env-topic", cfg.Kafka.Topic)
}

func TestLoad_EnvKafkaBrokers(t *testing.T) {
	t.Setenv("SOLID_KAFKA_BROKERS", "kafka1:9092,kafka2:9093")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka1:9092", "kafka2:9093"}, cfg.Kafka.Brokers)
}

func TestLoad_EnvBadBroker(t *testing.T) {
	t.Setenv("SOLID_KAFKA_BROKERS", "no-port")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hostname_port")
}

func TestLoad_Output(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "solid.yaml", "output: from-file.txt\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-file.txt", cfg.Output)
	assert.False(t, cfg.WritesToStdout())

	t.Setenv("SOLID_OUTPUT", "-")
	cfg, err = Load(p)
	require.NoError(t, err)
	assert.True(t, cfg.WritesToStdout())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read ")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SOLID_FORMAT", "xml")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Format (oneof)")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default ok", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "Config.LogLevel (oneof)"},
		{name: "empty topic", mutate: func(c *Config) { c.Kafka.Topic = "" }, wantErr: "Config.Kafka.Topic (required)"},
		{name: "bad broker", mutate: func(c *Config) { c.Kafka.Brokers = []string{"no-port"} }, wantErr: "hostname_port"},
		{name: "good broker", mutate: func(c *Config) { c.Kafka.Brokers = []string{"kafka:9092"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
