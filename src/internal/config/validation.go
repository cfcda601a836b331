// FILE: failwrite/src/internal/config/validation.go
package config

import (
	"fmt"
	"math"

	"failwrite/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

// validateConfig is the centralized validator for the entire configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateAppender(&cfg.Appender); err != nil {
		return fmt.Errorf("appender config: %w", err)
	}

	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func validateAppender(a *AppenderConfig) error {
	if a.Count < 0 {
		return fmt.Errorf("count cannot be negative: %d", a.Count)
	}
	if a.Count == math.MaxInt64 {
		return fmt.Errorf("count must be below %d", int64(math.MaxInt64))
	}

	switch a.Format {
	case core.FormatJSON, core.FormatMsgpack:
	default:
		return fmt.Errorf("invalid format '%s' (valid: json, msgpack)", a.Format)
	}

	if err := lconfig.NonEmpty(a.OutputPath); err != nil {
		return fmt.Errorf("output_path is required")
	}

	switch a.OnSkip {
	case core.OnSkipLog, core.OnSkipFail:
	default:
		return fmt.Errorf("invalid on_skip '%s' (valid: log, fail)", a.OnSkip)
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("missing logging section")
	}

	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"split": true, "all": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" || cfg.Output == "all" {
		if cfg.File == nil {
			return fmt.Errorf("log output '%s' requires a file section", cfg.Output)
		}
		if err := lconfig.NonEmpty(cfg.File.Directory); err != nil {
			return fmt.Errorf("log file requires 'directory'")
		}
		if err := lconfig.NonEmpty(cfg.File.Name); err != nil {
			return fmt.Errorf("log file requires 'name'")
		}
		if cfg.File.MaxSizeMB < 0 {
			return fmt.Errorf("log file max_size_mb cannot be negative")
		}
		if cfg.File.MaxTotalSizeMB < 0 {
			return fmt.Errorf("log file max_total_size_mb cannot be negative")
		}
	}

	if cfg.Console != nil {
		validTargets := map[string]bool{
			"stdout": true, "stderr": true, "split": true,
		}
		if !validTargets[cfg.Console.Target] {
			return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
		}

		validFormats := map[string]bool{
			"txt": true, "json": true, "": true,
		}
		if !validFormats[cfg.Console.Format] {
			return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
		}
	}

	return nil
}
