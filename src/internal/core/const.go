// FILE: failwrite/src/internal/core/const.go
package core

// Output defaults
const (
	DefaultOutputPath = "failed_events.log"
	DefaultFileMode   = 0666
	DefaultCount      = 999 // ids 0..999, 1000 lines
)

// Codec names
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Skip policies applied when a record cannot be encoded
const (
	OnSkipLog  = "log"
	OnSkipFail = "fail"
)

// RecordKey wraps every generated event
const RecordKey = "test"
