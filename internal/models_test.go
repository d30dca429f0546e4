package internal

import (
	"testing"
	"time"
)

func TestParseAPITime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-08-20T10:30:00Z",
			want:  time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with fraction",
			input: "2026-08-20T10:30:00.123456Z",
			want:  time.Date(2026, 8, 20, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "naive iso without zone",
			input: "2026-08-20T10:30:00.123456",
			want:  time.Date(2026, 8, 20, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "space separated",
			input: "2026-08-20 10:30:00",
			want:  time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "empty",
			input: "",
			want:  time.Time{},
		},
		{
			name:  "garbage",
			input: "yesterday-ish",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := Ticket{SubmittedAt: tt.input}
			if got := ticket.GetSubmittedAt(); !got.Equal(tt.want) {
				t.Errorf("GetSubmittedAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicket_GetResolvedAt(t *testing.T) {
	ticket := Ticket{ResolvedAt: "2026-08-19T14:20:00Z"}
	want := time.Date(2026, 8, 19, 14, 20, 0, 0, time.UTC)
	if got := ticket.GetResolvedAt(); !got.Equal(want) {
		t.Errorf("GetResolvedAt() = %v, want %v", got, want)
	}

	unresolved := Ticket{}
	if !unresolved.GetResolvedAt().IsZero() {
		t.Error("missing resolved_at should parse to zero time")
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"TICKET-001", "TICKET-0"},
		{"T-100", "T-100"},
		{"", ""},
		{"12345678", "12345678"},
	}
	for _, tt := range tests {
		if got := ShortID(tt.input); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
