// FILE: failwrite/src/internal/appender/line.go
package appender

// Line is the result of encoding one record.
// Exactly one of Data (serialized) or Skipped (with Err) is set.
type Line struct {
	// base64 payload plus a single trailing '\n'
	Data []byte

	Skipped bool

	// Wraps ErrEncodingFailure when Skipped
	Err error
}

// Empty reports whether appending the line would write nothing
func (l Line) Empty() bool {
	return len(l.Data) == 0
}

func (l Line) String() string {
	return string(l.Data)
}
