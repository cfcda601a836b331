// FILE: failwrite/src/internal/config/logging.go
package config

// LogConfig controls failwrite's own diagnostics (startup, skipped records,
// run totals). It never touches the event data file at appender.output_path;
// that file only ever receives encoded lines.
type LogConfig struct {
	// "stdout", "stderr", "split", "file", "all" (file + console) or "none"
	Output string `toml:"output"`

	// "debug" adds per-open detail; "warn" still reports skipped records
	Level string `toml:"level"`

	// Used when Output is "file" or "all"
	File *LogFileConfig `toml:"file"`

	Console *LogConsoleConfig `toml:"console"`
}

// LogFileConfig places diagnostic logs, rotated by the logger. The directory
// must differ from anything a reader of the event log scans for lines.
type LogFileConfig struct {
	Directory      string  `toml:"directory"`
	Name           string  `toml:"name"`
	MaxSizeMB      int64   `toml:"max_size_mb"`
	MaxTotalSizeMB int64   `toml:"max_total_size_mb"`
	RetentionHours float64 `toml:"retention_hours"` // 0 keeps logs forever
}

type LogConsoleConfig struct {
	// "split" sends info/debug to stdout and warn/error to stderr
	Target string `toml:"target"`

	// "txt" or "json"
	Format string `toml:"format"`
}

// DefaultLogConfig logs at info to stderr, so stdout stays free for the run
// summary. File settings apply only after switching Output to "file" or "all".
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "stderr",
		Level:  "info",
		File: &LogFileConfig{
			Directory:      "./log",
			Name:           "failwrite",
			MaxSizeMB:      10,
			MaxTotalSizeMB: 100,
			RetentionHours: 72,
		},
		Console: &LogConsoleConfig{
			Target: "stderr",
			Format: "txt",
		},
	}
}
