// FILE: failwrite/src/internal/appender/errors.go
package appender

import "errors"

var (
	// ErrIOUnavailable means the output file could not be opened or written.
	// It is the only fatal failure of a run.
	ErrIOUnavailable = errors.New("output unavailable")

	// ErrEncodingFailure means the codec could not represent a record.
	// The record is skipped; the run continues unless on_skip is "fail".
	ErrEncodingFailure = errors.New("record encoding failed")
)
