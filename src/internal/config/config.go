// FILE: failwrite/src/internal/config/config.go
package config

import "failwrite/src/internal/core"

// Config is the full runtime configuration
type Config struct {
	// Suppress all console and log output
	Quiet bool `toml:"quiet"`

	// Encoded event log writer settings
	Appender AppenderConfig `toml:"appender"`

	// Application logging
	Logging *LogConfig `toml:"logging"`
}

// AppenderConfig controls what is written and where
type AppenderConfig struct {
	// Last id generated; ids run 0..count inclusive
	Count int64 `toml:"count"`

	// Serialization format: "json" or "msgpack"
	Format string `toml:"format"`

	// Destination log file, created if absent and only ever appended to
	OutputPath string `toml:"output_path"`

	// Open with O_SYNC so each line is durable when Append returns
	Sync bool `toml:"sync"`

	// Action on a record the codec cannot represent: "log" or "fail"
	OnSkip string `toml:"on_skip"`
}

func defaults() *Config {
	return &Config{
		Quiet: false,
		Appender: AppenderConfig{
			Count:      core.DefaultCount,
			Format:     core.FormatMsgpack,
			OutputPath: core.DefaultOutputPath,
			Sync:       true,
			OnSkip:     core.OnSkipLog,
		},
		Logging: DefaultLogConfig(),
	}
}

// Defaults returns a fresh copy of the built-in configuration
func Defaults() *Config {
	return defaults()
}
