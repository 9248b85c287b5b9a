// Command solid lists and runs the SOLID principle demos.
//
// Usage
//
//	solid list                 # show the five principles
//	solid run                  # run every demo in S-O-L-I-D order
//	solid run lsp dip          # run selected demos
//	solid version
//
// Flags
//
//	--config     path to a config file (TOML, YAML, JSON, ...)
//	--log-level  debug | info | warn | error (overrides SOLID_LOG_LEVEL)
//	--format     text | json; applies to logs and to `solid list`
//	--output/-o  "-" for stdout (default) or a file path for `solid run` output
//
// Kafka
//
// When kafka.brokers (or SOLID_KAFKA_BROKERS) is set, the dip demo publishes its
// Kafka notification to kafka.topic instead of printing it.
package main
