// FILE: failwrite/src/cmd/failwrite/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"failwrite/src/internal/config"
	"failwrite/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	InitOutputHandler(false)

	router := NewCommandRouter(os.Stdout)
	if handled, err := router.Route(os.Args); handled {
		if err != nil {
			FatalError(1, "Error: %v\n", err)
		}
		os.Exit(0)
	}

	flagCfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if flagCfg.ConfigFile != "" {
		os.Setenv("FAILWRITE_CONFIG_FILE", flagCfg.ConfigFile)
	}

	cfg, err := config.LoadWithCLI(flagCfg.Args)
	if err != nil {
		InitOutputHandler(flagCfg.Quiet)
		if errors.Is(err, config.ErrConfigNotFound) {
			FatalError(2, "%v\n", err)
		}
		FatalError(1, "Failed to load config: %v\n", err)
	}
	cfg.Quiet = cfg.Quiet || flagCfg.Quiet

	InitOutputHandler(cfg.Quiet)

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}

	logger.Info("msg", "failwrite starting",
		"version", version.Short(),
		"config_file", config.GetConfigPath(),
		"output_path", cfg.Appender.OutputPath,
		"format", cfg.Appender.Format,
		"count", cfg.Appender.Count)

	stats, err := runAppender(cfg)
	if err != nil {
		logger.Error("msg", "Run failed", "error", err)
		shutdownLogger()
		FatalError(1, "Error: %v\n", err)
	}

	Summary("Wrote %d lines (%d skipped, %d bytes) to %s in %s\n",
		stats.TotalWritten, stats.TotalSkipped, stats.TotalBytes, stats.Path,
		time.Since(stats.StartTime).Round(time.Millisecond))

	shutdownLogger()
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}
