// FILE: failwrite/src/internal/core/record.go
package core

// Event is a single generated counter value
type Event struct {
	ID int64 `json:"id" msgpack:"id"`
}

// Record is the serialized shape of one log line: {"test": {"id": n}}
type Record struct {
	Test Event `json:"test" msgpack:"test"`
}

// NewRecord wraps id under RecordKey
func NewRecord(id int64) Record {
	return Record{Test: Event{ID: id}}
}
