// FILE: failwrite/src/internal/codec/codec.go
package codec

import (
	"fmt"

	"failwrite/src/internal/core"
)

// Codec serializes a record into the payload that gets base64 encoded on each line.
type Codec interface {
	// Marshal returns the serialized form of v without any line terminator.
	Marshal(v any) ([]byte, error)

	// Name returns the codec type name
	Name() string
}

// New creates a Codec by name. An empty name selects msgpack.
func New(name string) (Codec, error) {
	if name == "" {
		name = core.FormatMsgpack
	}

	switch name {
	case core.FormatJSON:
		return NewJSONCodec(), nil
	case core.FormatMsgpack:
		return NewMsgpackCodec(), nil
	default:
		return nil, fmt.Errorf("unknown codec type: %s", name)
	}
}
