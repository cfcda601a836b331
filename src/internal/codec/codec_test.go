// FILE: failwrite/src/internal/codec/codec_test.go
package codec

import (
	"encoding/json"
	"testing"

	"failwrite/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestNewCodec(t *testing.T) {
	testCases := []struct {
		name        string
		codecName   string
		expected    string
		expectError bool
	}{
		{
			name:      "JSONCodec",
			codecName: "json",
			expected:  "json",
		},
		{
			name:      "MsgpackCodec",
			codecName: "msgpack",
			expected:  "msgpack",
		},
		{
			name:      "DefaultToMsgpack",
			codecName: "",
			expected:  "msgpack",
		},
		{
			name:        "UnknownCodec",
			codecName:   "xml",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.codecName)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				require.NotNil(t, c)
				assert.Equal(t, tc.expected, c.Name())
			}
		})
	}
}

func TestJSONCodec_Marshal(t *testing.T) {
	c := NewJSONCodec()

	t.Run("RecordShape", func(t *testing.T) {
		data, err := c.Marshal(core.NewRecord(0))
		require.NoError(t, err)
		assert.Equal(t, `{"test":{"id":0}}`, string(data))
	})

	t.Run("UnsupportedValue", func(t *testing.T) {
		data, err := c.Marshal(make(chan int))
		assert.Error(t, err)
		assert.Nil(t, data)
	})
}

func TestMsgpackCodec_Marshal(t *testing.T) {
	c := NewMsgpackCodec()

	t.Run("RoundTrip", func(t *testing.T) {
		data, err := c.Marshal(core.NewRecord(7))
		require.NoError(t, err)

		var decoded core.Record
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		assert.Equal(t, int64(7), decoded.Test.ID)
	})

	t.Run("EncodesAsMap", func(t *testing.T) {
		data, err := c.Marshal(core.NewRecord(1))
		require.NoError(t, err)

		var decoded map[string]map[string]int64
		require.NoError(t, msgpack.Unmarshal(data, &decoded))

		asJSON, err := json.Marshal(decoded)
		require.NoError(t, err)
		assert.Equal(t, `{"test":{"id":1}}`, string(asJSON))
	})

	t.Run("DeterministicMap", func(t *testing.T) {
		in := map[string]any{"b": 2, "a": 1, "c": 3, "d": "x"}
		first, err := c.Marshal(in)
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			again, err := c.Marshal(in)
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})

	t.Run("DeterministicRecord", func(t *testing.T) {
		first, err := c.Marshal(core.NewRecord(424242))
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			again, err := c.Marshal(core.NewRecord(424242))
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})

	t.Run("UnsupportedValue", func(t *testing.T) {
		data, err := c.Marshal(make(chan int))
		assert.Error(t, err)
		assert.Nil(t, data)
	})
}
