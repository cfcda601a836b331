// FILE: failwrite/src/cmd/failwrite/flags_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expected    flagConfig
		expectError bool
	}{
		{
			name:     "Empty",
			args:     nil,
			expected: flagConfig{},
		},
		{
			name:     "ShortConfig",
			args:     []string{"-c", "/etc/failwrite.toml"},
			expected: flagConfig{ConfigFile: "/etc/failwrite.toml"},
		},
		{
			name:     "LongConfigEquals",
			args:     []string{"--config=prod.toml"},
			expected: flagConfig{ConfigFile: "prod.toml"},
		},
		{
			name:        "ConfigMissingPath",
			args:        []string{"--config"},
			expectError: true,
		},
		{
			name:        "ConfigFollowedByFlag",
			args:        []string{"-c", "--quiet"},
			expectError: true,
		},
		{
			name:     "QuietAndVersion",
			args:     []string{"-q", "--version"},
			expected: flagConfig{Quiet: true, ShowVersion: true},
		},
		{
			name: "PassThrough",
			args: []string{"--appender.count=2", "-c", "x.toml", "--appender.format=json"},
			expected: flagConfig{
				ConfigFile: "x.toml",
				Args:       []string{"--appender.count=2", "--appender.format=json"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fc, err := parseFlags(tc.args)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *fc)
		})
	}
}
