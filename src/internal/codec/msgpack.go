// FILE: failwrite/src/internal/codec/msgpack.go
package codec

import (
	"bytes"
	"fmt"

	"failwrite/src/internal/core"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackCodec produces MessagePack payloads. Structs are written as maps
// keyed by their msgpack tag names.
type MsgpackCodec struct{}

// NewMsgpackCodec creates a new MessagePack codec.
func NewMsgpackCodec() *MsgpackCodec {
	return &MsgpackCodec{}
}

// Marshal encodes v as MessagePack with compact integers. Output is stable
// for structs, map[string]string and map[string]any; other map types are
// written in Go map iteration order.
func (c *MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the codec's type name.
func (c *MsgpackCodec) Name() string {
	return core.FormatMsgpack
}
