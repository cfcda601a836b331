// FILE: failwrite/src/cmd/failwrite/output.go
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// OutputHandler is the console channel for people running failwrite:
// confirmations, the end-of-run summary and fatal errors. Structured
// diagnostics go through the logger, and event data only ever goes to the
// appender's output file. Quiet mode silences all of it.
type OutputHandler struct {
	quiet       bool
	interactive bool // stdout is a terminal
	mu          sync.RWMutex
	stdout      io.Writer
	stderr      io.Writer
}

var output *OutputHandler

// InitOutputHandler replaces the global handler. main calls it once before
// routing and again after config load, when quiet is known.
func InitOutputHandler(quiet bool) {
	output = &OutputHandler{
		quiet:       quiet,
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

func (o *OutputHandler) Print(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.quiet {
		fmt.Fprintf(o.stdout, format, args...)
	}
}

// Summary prints only when stdout is a terminal, so `failwrite | tee` and
// cron runs stay silent on success.
func (o *OutputHandler) Summary(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.quiet && o.interactive {
		fmt.Fprintf(o.stdout, format, args...)
	}
}

func (o *OutputHandler) Error(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.quiet {
		fmt.Fprintf(o.stderr, format, args...)
	}
}

// FatalError exits with code even in quiet mode; only the message is suppressed
func (o *OutputHandler) FatalError(code int, format string, args ...any) {
	o.Error(format, args...)
	os.Exit(code)
}

func Print(format string, args ...any) {
	if output != nil {
		output.Print(format, args...)
	}
}

func Summary(format string, args ...any) {
	if output != nil {
		output.Summary(format, args...)
	}
}

func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	}
}

func FatalError(code int, format string, args ...any) {
	if output != nil {
		output.FatalError(code, format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
		os.Exit(code)
	}
}
