// FILE: failwrite/src/internal/appender/appender.go
package appender

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"failwrite/src/internal/codec"
	"failwrite/src/internal/config"
	"failwrite/src/internal/core"

	"github.com/lixenwraith/log"
)

// Appender writes encoded records to an append-only, line-oriented log file
type Appender struct {
	file      *os.File
	path      string
	codec     codec.Codec
	onSkip    string
	startTime time.Time
	logger    *log.Logger

	// Statistics
	totalWritten atomic.Uint64
	totalSkipped atomic.Uint64
	totalBytes   atomic.Uint64
	lastWritten  atomic.Value // time.Time
}

// Stats contains statistics about an appender
type Stats struct {
	Path         string
	Codec        string
	TotalWritten uint64
	TotalSkipped uint64
	TotalBytes   uint64
	StartTime    time.Time
	LastWritten  time.Time
}

// Open opens cfg.OutputPath for append, creating it if absent.
// With cfg.Sync every write is flushed to stable storage before returning.
func Open(cfg *config.AppenderConfig, c codec.Codec, logger *log.Logger) (*Appender, error) {
	if c == nil {
		return nil, fmt.Errorf("appender requires a codec")
	}

	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if cfg.Sync {
		flags |= os.O_SYNC
	}

	f, err := os.OpenFile(cfg.OutputPath, flags, core.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOUnavailable, err)
	}

	onSkip := cfg.OnSkip
	if onSkip == "" {
		onSkip = core.OnSkipLog
	}

	a := &Appender{
		file:      f,
		path:      cfg.OutputPath,
		codec:     c,
		onSkip:    onSkip,
		startTime: time.Now(),
		logger:    logger,
	}
	a.lastWritten.Store(time.Time{})

	logger.Debug("msg", "Output file opened",
		"component", "appender",
		"path", a.path,
		"codec", c.Name(),
		"sync", cfg.Sync)

	return a, nil
}

// Encode serializes record, base64 encodes the payload and terminates it
// with a newline. A record the codec cannot represent yields a skipped Line.
func (a *Appender) Encode(record any) Line {
	payload, err := a.codec.Marshal(record)
	if err != nil {
		return Line{
			Skipped: true,
			Err:     fmt.Errorf("%w: %w", ErrEncodingFailure, err),
		}
	}

	data := make([]byte, base64.StdEncoding.EncodedLen(len(payload))+1)
	base64.StdEncoding.Encode(data, payload)
	data[len(data)-1] = '\n'

	return Line{Data: data}
}

// Append writes line at the end of the file in a single write.
// Empty and skipped lines write nothing.
func (a *Appender) Append(line Line) error {
	if line.Empty() {
		return nil
	}

	n, err := a.file.Write(line.Data)
	a.totalBytes.Add(uint64(n))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOUnavailable, err)
	}

	a.totalWritten.Add(1)
	a.lastWritten.Store(time.Now())
	return nil
}

// Run writes records with ids 0 through count inclusive, in order, and
// closes the file. The file is closed on every return path.
func (a *Appender) Run(count int64) (err error) {
	defer func() {
		if closeErr := a.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	a.logger.Info("msg", "Writing events",
		"component", "appender",
		"path", a.path,
		"codec", a.codec.Name(),
		"count", count)

	// id >= 0 stops the loop if id++ overflows at count == MaxInt64
	for id := int64(0); id >= 0 && id <= count; id++ {
		line := a.Encode(core.NewRecord(id))
		if line.Skipped {
			a.totalSkipped.Add(1)
			if a.onSkip == core.OnSkipFail {
				return fmt.Errorf("record %d: %w", id, line.Err)
			}
			a.logger.Warn("msg", "Skipping record",
				"component", "appender",
				"id", id,
				"error", line.Err)
			continue
		}

		if err := a.Append(line); err != nil {
			return fmt.Errorf("record %d: %w", id, err)
		}
	}

	a.logger.Info("msg", "Events written",
		"component", "appender",
		"path", a.path,
		"written", a.totalWritten.Load(),
		"skipped", a.totalSkipped.Load())

	return nil
}

// Close releases the file handle. Calling Close more than once is safe.
func (a *Appender) Close() error {
	if err := a.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("%w: %w", ErrIOUnavailable, err)
	}
	return nil
}

// Path returns the output file path
func (a *Appender) Path() string {
	return a.path
}

// GetStats returns appender statistics
func (a *Appender) GetStats() Stats {
	lastWritten, _ := a.lastWritten.Load().(time.Time)

	return Stats{
		Path:         a.path,
		Codec:        a.codec.Name(),
		TotalWritten: a.totalWritten.Load(),
		TotalSkipped: a.totalSkipped.Load(),
		TotalBytes:   a.totalBytes.Load(),
		StartTime:    a.startTime,
		LastWritten:  lastWritten,
	}
}
