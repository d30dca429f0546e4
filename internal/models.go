package internal

import (
	"time"
)

// Ticket status values used by the support API
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Conversation history roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Ticket represents an escalated support ticket as returned by the API
type Ticket struct {
	ID                  string         `json:"id"`
	Status              string         `json:"status"`
	UserQuery           string         `json:"user_query"`
	AIAnswer            string         `json:"ai_answer"`
	UserFeedback        string         `json:"user_feedback"`
	AdminSolution       string         `json:"admin_solution,omitempty"`
	SubmittedAt         string         `json:"submitted_at"`
	ResolvedAt          string         `json:"resolved_at,omitempty"`
	ResolvedBy          string         `json:"resolved_by,omitempty"`
	Comments            []Comment      `json:"comments,omitempty"`
	ConversationHistory []HistoryEntry `json:"conversation_history,omitempty"`
}

// Comment represents one entry in a ticket's comment thread
type Comment struct {
	ID         string `json:"id"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Type       string `json:"type,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// HistoryEntry is one role/content pair of conversation context
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Stats holds the admin dashboard counters
type Stats struct {
	TotalEscalatedTickets int     `json:"total_escalated_tickets"`
	PendingTickets        int     `json:"pending_tickets"`
	ResolvedTickets       int     `json:"resolved_tickets"`
	ResolutionRate        float64 `json:"resolution_rate"`
}

// SearchRequest is the body of POST /search
type SearchRequest struct {
	Query               string         `json:"query"`
	TopK                int            `json:"top_k"`
	SimilarityThreshold float64        `json:"similarity_threshold"`
	ConversationHistory []HistoryEntry `json:"conversation_history,omitempty"`
	ConversationID      string         `json:"conversation_id,omitempty"`
}

// SearchResponse is the answer returned by POST /search
type SearchResponse struct {
	Answer          string           `json:"answer"`
	RelevantTickets []RelevantTicket `json:"relevant_tickets,omitempty"`
}

// RelevantTicket is one similarity match included in a search response
type RelevantTicket struct {
	TicketID   string  `json:"ticket_id"`
	Problem    string  `json:"problem"`
	Resolution string  `json:"resolution"`
	Category   string  `json:"category"`
	Distance   float64 `json:"distance"`
}

// QuickSearchResponse is the result of GET /search?query= (dashboard fallback)
type QuickSearchResponse struct {
	Results []QuickSearchResult `json:"results"`
}

// QuickSearchResult is one free-text match from the quick search endpoint
type QuickSearchResult struct {
	Content string `json:"content"`
}

// EscalateRequest is the body of POST /escalate
type EscalateRequest struct {
	UserQuery           string         `json:"user_query"`
	AIAnswer            string         `json:"ai_answer"`
	UserFeedback        string         `json:"user_feedback"`
	ConversationHistory []HistoryEntry `json:"conversation_history,omitempty"`
}

// EscalateResponse acknowledges a new escalated ticket
type EscalateResponse struct {
	TicketID string `json:"ticket_id"`
	Message  string `json:"message"`
}

// ResolveRequest is the body of POST /admin/resolve
type ResolveRequest struct {
	TicketID string `json:"ticket_id"`
	Solution string `json:"solution"`
}

// CommentRequest is the body of POST /tickets/comment
type CommentRequest struct {
	TicketID     string `json:"ticket_id"`
	Content      string `json:"content"`
	Author       string `json:"author"`
	AuthorName   string `json:"author_name"`
	IsResolution bool   `json:"is_resolution"`
}

// GetSubmittedAt parses the submission timestamp, zero time on failure
func (t *Ticket) GetSubmittedAt() time.Time {
	return parseAPITime(t.SubmittedAt)
}

// GetResolvedAt parses the resolution timestamp, zero time on failure
func (t *Ticket) GetResolvedAt() time.Time {
	return parseAPITime(t.ResolvedAt)
}

// parseAPITime accepts the timestamp shapes the API is known to emit
func parseAPITime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999", // naive ISO without zone
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ShortID returns the first 8 characters of a ticket or conversation ID
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
