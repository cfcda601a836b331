// FILE: failwrite/src/internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "FAILWRITE_"

// ErrConfigNotFound is returned when a config file named through -c or
// FAILWRITE_CONFIG_FILE does not exist. Only the implicit default may be absent.
var ErrConfigNotFound = errors.New("config file not found")

// LoadWithCLI layers defaults, the TOML file, environment and CLI arguments
// (in increasing precedence) and validates the result.
func LoadWithCLI(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	if os.Getenv(envPrefix+"CONFIG_FILE") != "" {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, configPath, err)
		} else if err != nil {
			return nil, fmt.Errorf("failed to access config file %s: %w", configPath, err)
		}
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		// Missing default file is fine, defaults and env still apply
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cfg == nil {
		return nil, fmt.Errorf("failed to load config from %s", configPath)
	}

	finalConfig := &Config{}
	if err := cfg.Scan("", finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	if finalConfig.Logging == nil {
		finalConfig.Logging = DefaultLogConfig()
	}

	return finalConfig, validateConfig(finalConfig)
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// GetConfigPath resolves the config file from FAILWRITE_CONFIG_FILE and
// FAILWRITE_CONFIG_DIR, falling back to failwrite.toml in the working directory.
func GetConfigPath() string {
	if configFile := os.Getenv(envPrefix + "CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv(envPrefix + "CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv(envPrefix + "CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "failwrite.toml")
	}

	return "failwrite.toml"
}
