package internal

import "testing"

func TestFilterTickets(t *testing.T) {
	tickets := sampleTickets()

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{
			name:    "empty term keeps all",
			term:    "",
			wantIDs: []string{"TICKET-001", "TICKET-002"},
		},
		{
			name:    "whitespace term keeps all",
			term:    "   ",
			wantIDs: []string{"TICKET-001", "TICKET-002"},
		},
		{
			name:    "matches user query",
			term:    "brakes",
			wantIDs: []string{"TICKET-001"},
		},
		{
			name:    "case insensitive",
			term:    "BRAKES",
			wantIDs: []string{"TICKET-001"},
		},
		{
			name:    "matches ai answer",
			term:    "oil level",
			wantIDs: []string{"TICKET-002"},
		},
		{
			name:    "matches feedback",
			term:    "after replacement",
			wantIDs: []string{"TICKET-001"},
		},
		{
			name:    "no match",
			term:    "transmission",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTickets(tickets, tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d tickets, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("tickets[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestIntersectSearchResults(t *testing.T) {
	tickets := sampleTickets()

	results := []QuickSearchResult{
		{Content: "Problem: My brakes squeak when stopping Resolution: new pads"},
	}
	got := IntersectSearchResults(tickets, results)
	if len(got) != 1 || got[0].ID != "TICKET-001" {
		t.Errorf("got %+v, want only TICKET-001", got)
	}

	// Answer text also counts as a match.
	results = []QuickSearchResult{{Content: "Suggested fix: Check the oil level first"}}
	got = IntersectSearchResults(tickets, results)
	if len(got) != 1 || got[0].ID != "TICKET-002" {
		t.Errorf("got %+v, want only TICKET-002", got)
	}

	if got := IntersectSearchResults(tickets, nil); len(got) != 0 {
		t.Errorf("no results should match no tickets, got %+v", got)
	}
}

func TestFilterByStatus(t *testing.T) {
	tickets := sampleTickets()

	tests := []struct {
		status string
		want   int
	}{
		{"", 2},
		{"all", 2},
		{StatusPending, 1},
		{StatusResolved, 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := FilterByStatus(tickets, tt.status); len(got) != tt.want {
			t.Errorf("FilterByStatus(%q) kept %d tickets, want %d", tt.status, len(got), tt.want)
		}
	}
}
