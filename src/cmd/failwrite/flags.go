// FILE: failwrite/src/cmd/failwrite/flags.go
package main

import (
	"fmt"
	"strings"
)

// flagConfig holds the flags handled before configuration loading.
// Everything else is passed through to the config loader.
type flagConfig struct {
	ConfigFile  string
	Quiet       bool
	ShowVersion bool
	Args        []string
}

func parseFlags(args []string) (*flagConfig, error) {
	fc := &flagConfig{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, fmt.Errorf("%s requires a path", arg)
			}
			fc.ConfigFile = args[i+1]
			i++

		case strings.HasPrefix(arg, "--config="):
			fc.ConfigFile = strings.TrimPrefix(arg, "--config=")
			if fc.ConfigFile == "" {
				return nil, fmt.Errorf("--config requires a path")
			}

		case arg == "-q" || arg == "--quiet":
			fc.Quiet = true

		case arg == "-v" || arg == "--version":
			fc.ShowVersion = true

		default:
			fc.Args = append(fc.Args, arg)
		}
	}

	return fc, nil
}
