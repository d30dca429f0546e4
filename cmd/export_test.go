package cmd

import (
	"bytes"
	"testing"
)

func TestExportCommand_FlagParsing(t *testing.T) {
	// Flag parsing only; execution needs a session and a reachable API.
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "format flag",
			args: []string{"export", "--format", "jsonl"},
		},
		{
			name: "output directory flag",
			args: []string{"export", "--out", "/tmp/ticket-desk-test"},
		},
		{
			name: "status flag",
			args: []string{"export", "--status", "pending"},
		},
		{
			name: "clear-cache flag",
			args: []string{"export", "--clear-cache"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			_ = rootCmd.Execute()
		})
	}
}
