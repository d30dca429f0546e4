package export

import (
	"strings"
	"testing"
	"time"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "csv", wantExt: "csv"},
		{format: "json", wantExt: "json"},
		{format: "jsonl", wantExt: "jsonl"},
		{format: "md", wantExt: "md"},
		{format: "markdown", wantExt: "md"},
		{format: "yaml", wantExt: "yaml"},
		{format: "xlsx", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewExporter(%q) should fail", tt.format)
				}
				if !strings.Contains(err.Error(), "unsupported format") {
					t.Errorf("error = %q, want unsupported format message", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error: %v", tt.format, err)
			}
			if got := e.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	e, err := NewExporter("csv")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	if got := Filename(now, e); got != "tickets-export-2026-08-28.csv" {
		t.Errorf("Filename() = %q", got)
	}
}
