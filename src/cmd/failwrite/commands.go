// FILE: failwrite/src/cmd/failwrite/commands.go
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"failwrite/src/internal/config"
	"failwrite/src/internal/version"
)

// Handles subcommand routing before main app initialization
type CommandRouter struct {
	commands map[string]CommandHandler
	out      io.Writer
}

// Defines the interface for subcommands
type CommandHandler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// Creates and initializes the command router
func NewCommandRouter(out io.Writer) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]CommandHandler),
		out:      out,
	}

	router.commands["version"] = &versionCommand{out: out}
	router.commands["help"] = &helpCommand{router: router}
	router.commands["config"] = &configCommand{}

	return router
}

// Route executes a subcommand or help request found in args.
// handled is false when the main run should proceed.
func (r *CommandRouter) Route(args []string) (handled bool, err error) {
	if len(args) < 2 {
		return false, nil
	}

	cmdName := args[1]
	handler, exists := r.commands[cmdName]

	// -h after a known command shows that command's help
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			if exists && cmdName != "help" {
				fmt.Fprint(r.out, handler.Help())
				return true, nil
			}
			return true, r.commands["help"].Execute(nil)
		}
	}

	if exists {
		return true, handler.Execute(args[2:])
	}

	// Check if it looks like a mistyped command (not a flag)
	if cmdName != "" && cmdName[0] != '-' {
		return true, fmt.Errorf("unknown command: %s\n\nAvailable commands:\n%s", cmdName, r.commandList())
	}

	return false, nil
}

// commandList formats registered commands sorted by name
func (r *CommandRouter) commandList() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %-10s %s", name, r.commands[name].Description()))
	}
	return strings.Join(lines, "\n")
}

type helpCommand struct {
	router *CommandRouter
}

func (c *helpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		handler, exists := c.router.commands[args[0]]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprint(c.router.out, handler.Help())
		return nil
	}

	fmt.Fprint(c.router.out, helpText)
	return nil
}

func (c *helpCommand) Description() string {
	return "Display help information"
}

func (c *helpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  failwrite help              Show general help
  failwrite help <command>    Show help for a specific command
  failwrite <command> --help  Same as above
`
}

type versionCommand struct {
	out io.Writer
}

func (c *versionCommand) Execute(args []string) error {
	fmt.Fprintln(c.out, version.String())
	return nil
}

func (c *versionCommand) Description() string {
	return "Show version information"
}

func (c *versionCommand) Help() string {
	return `Version Command - Show failwrite version information

Usage:
  failwrite version
  failwrite -v
  failwrite --version
`
}

// configCommand writes the built-in defaults as a TOML file
type configCommand struct{}

func (c *configCommand) Execute(args []string) error {
	path := "failwrite.toml"
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	if err := config.Defaults().SaveToFile(path); err != nil {
		return err
	}

	Print("Default configuration written to %s\n", path)
	return nil
}

func (c *configCommand) Description() string {
	return "Write the default configuration to a TOML file"
}

func (c *configCommand) Help() string {
	return `Config Command - Write the default configuration

Usage:
  failwrite config [path]

Writes every option with its default value as TOML (default path:
failwrite.toml). An existing file is never overwritten. Load the result
with -c <path> or FAILWRITE_CONFIG_FILE.
`
}
