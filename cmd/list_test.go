package cmd

import (
	"testing"
	"time"

	"github.com/iksnae/ticket-desk/internal"
)

func TestRelativeDate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "within a day",
			t:    now.Add(-2 * time.Hour),
			want: now.Add(-2 * time.Hour).Format("Today 15:04"),
		},
		{
			name: "within a week",
			t:    now.Add(-3 * 24 * time.Hour),
			want: now.Add(-3 * 24 * time.Hour).Format("Mon 15:04"),
		},
		{
			name: "within a year",
			t:    now.Add(-60 * 24 * time.Hour),
			want: now.Add(-60 * 24 * time.Hour).Format("Jan 02 15:04"),
		},
		{
			name: "older than a year",
			t:    now.Add(-400 * 24 * time.Hour),
			want: now.Add(-400 * 24 * time.Hour).Format("2006-01-02"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeDate(tt.t); got != tt.want {
				t.Errorf("relativeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayTickets(t *testing.T) {
	// Smoke test: rendering must not panic for any shape.
	tests := []struct {
		name    string
		tickets []internal.Ticket
	}{
		{
			name:    "empty list",
			tickets: nil,
		},
		{
			name: "mixed statuses",
			tickets: []internal.Ticket{
				{
					ID:          "TICKET-001",
					Status:      internal.StatusPending,
					UserQuery:   "My brakes squeak when stopping",
					SubmittedAt: "2026-08-20T10:30:00Z",
				},
				{
					ID:          "TICKET-002",
					Status:      internal.StatusResolved,
					UserQuery:   "A very long user query that should be truncated in the table view because it keeps going",
					SubmittedAt: "bad-timestamp",
					Comments:    []internal.Comment{{ID: "c1"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			displayTickets(tt.tickets)
		})
	}
}
