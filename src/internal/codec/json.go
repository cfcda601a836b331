// FILE: failwrite/src/internal/codec/json.go
package codec

import (
	"encoding/json"
	"fmt"

	"failwrite/src/internal/core"
)

// JSONCodec produces compact JSON payloads.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Marshal encodes v as compact JSON. Map keys are emitted sorted.
func (c *JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// Name returns the codec's type name.
func (c *JSONCodec) Name() string {
	return core.FormatJSON
}
