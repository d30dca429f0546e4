package internal

import "strings"

// FilterTickets is the client-side fallback search: case-insensitive
// substring containment over the ticket's query, answer, and feedback.
func FilterTickets(tickets []Ticket, term string) []Ticket {
	term = strings.TrimSpace(term)
	if term == "" {
		return tickets
	}

	needle := strings.ToLower(term)
	var matched []Ticket
	for _, t := range tickets {
		if strings.Contains(strings.ToLower(t.UserQuery), needle) ||
			strings.Contains(strings.ToLower(t.AIAnswer), needle) ||
			strings.Contains(strings.ToLower(t.UserFeedback), needle) {
			matched = append(matched, t)
		}
	}
	return matched
}

// IntersectSearchResults keeps the tickets whose query or answer appears
// inside any server-side search result. The server ranks; this narrows
// the already-loaded list to the tickets it named.
func IntersectSearchResults(tickets []Ticket, results []QuickSearchResult) []Ticket {
	var matched []Ticket
	for _, t := range tickets {
		for _, r := range results {
			if (t.UserQuery != "" && strings.Contains(r.Content, t.UserQuery)) ||
				(t.AIAnswer != "" && strings.Contains(r.Content, t.AIAnswer)) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// FilterByStatus keeps tickets with the given status; empty keeps all
func FilterByStatus(tickets []Ticket, status string) []Ticket {
	if status == "" || status == "all" {
		return tickets
	}
	var matched []Ticket
	for _, t := range tickets {
		if t.Status == status {
			matched = append(matched, t)
		}
	}
	return matched
}
