// FILE: failwrite/src/cmd/failwrite/commands_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRouter_Route(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		handled     bool
		expectError string
		contains    string
	}{
		{
			name: "NoArgs",
			args: []string{"failwrite"},
		},
		{
			name: "FlagsOnly",
			args: []string{"failwrite", "--appender.count=2"},
		},
		{
			name:     "Version",
			args:     []string{"failwrite", "version"},
			handled:  true,
			contains: "failwrite ",
		},
		{
			name:     "GeneralHelpFlag",
			args:     []string{"failwrite", "--appender.count=2", "-h"},
			handled:  true,
			contains: "Configuration Sources",
		},
		{
			name:     "CommandHelpFlag",
			args:     []string{"failwrite", "config", "-h"},
			handled:  true,
			contains: "Config Command",
		},
		{
			name:     "HelpForCommand",
			args:     []string{"failwrite", "help", "version"},
			handled:  true,
			contains: "Version Command",
		},
		{
			name:        "HelpForUnknownCommand",
			args:        []string{"failwrite", "help", "rotate"},
			handled:     true,
			expectError: "unknown command: rotate",
		},
		{
			name:        "UnknownCommand",
			args:        []string{"failwrite", "rotate"},
			handled:     true,
			expectError: "unknown command: rotate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			router := NewCommandRouter(&out)

			handled, err := router.Route(tc.args)
			assert.Equal(t, tc.handled, handled)

			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
				return
			}
			require.NoError(t, err)
			if tc.contains != "" {
				assert.Contains(t, out.String(), tc.contains)
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestConfigCommand_RefusesOverwrite(t *testing.T) {
	o, stdout, _ := newBufferedOutput(false, false)
	useOutput(t, o)

	path := filepath.Join(t.TempDir(), "failwrite.toml")
	require.NoError(t, os.WriteFile(path, []byte("keep = true\n"), 0644))

	err := (&configCommand{}).Execute([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep = true\n", string(data))
}
