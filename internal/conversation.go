package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// WelcomeText opens every conversation
const WelcomeText = "Hello! 👋 I'm your AI support assistant. I can help you with " +
	"troubleshooting, maintenance tips, and technical questions. What can I help you with today?"

// AskDetailsText prompts the user for escalation details
const AskDetailsText = "I understand you'd like to escalate this to our admin team. " +
	"To help us better understand your issue and resolve it quickly, could you please " +
	"explain your problem in detail? Include any additional information that would be helpful."

// Message is one entry in a conversation, immutable once appended
type Message struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time
}

// IsSystem reports whether the message was generated by the chat flow
// itself (welcome, ask-details prompt, escalation success/error notice)
// rather than by the user or the search API.
func (m *Message) IsSystem() bool {
	return m.ID == "welcome" ||
		strings.HasPrefix(m.ID, "ask-details-") ||
		strings.HasPrefix(m.ID, "success-") ||
		strings.HasPrefix(m.ID, "error-")
}

// Conversation is an append-only ordered message log with a derived title
type Conversation struct {
	ID       string
	Messages []Message
}

// Title derives the display title from the first user message
func (c *Conversation) Title() string {
	if len(c.Messages) > 1 {
		text := c.Messages[1].Text
		runes := []rune(text)
		if len(runes) > 30 {
			text = string(runes[:30])
		}
		return text + "..."
	}
	return "New Conversation"
}

// EscalationFlow tracks a pending escalation between the user's request
// and their detail message. At most one flow is active at a time.
type EscalationFlow struct {
	Stage               string // always "waiting_details" while active
	UserQuery           string
	AIAnswer            string
	ConversationHistory []HistoryEntry
}

// ChatAPI is the slice of the support API the chat session calls
type ChatAPI interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	Escalate(ctx context.Context, req EscalateRequest) (*EscalateResponse, error)
}

// ChatSession owns one chat widget's state: the current conversation,
// the set of past conversations keyed by id, and the escalation flow.
// Two states: idle, and awaiting escalation details (flow non-nil).
type ChatSession struct {
	api           ChatAPI
	conversations map[string]*Conversation
	current       *Conversation
	flow          *EscalationFlow
	disconnected  bool

	seq int
	now func() time.Time
}

// NewChatSession creates a session with a fresh welcome conversation
func NewChatSession(api ChatAPI) *ChatSession {
	s := &ChatSession{
		api:           api,
		conversations: make(map[string]*Conversation),
		now:           time.Now,
	}
	s.StartNewConversation()
	return s
}

// Current returns the active conversation
func (s *ChatSession) Current() *Conversation {
	return s.current
}

// Messages returns the active conversation's message log
func (s *ChatSession) Messages() []Message {
	return s.current.Messages
}

// AwaitingDetails reports whether an escalation flow is pending
func (s *ChatSession) AwaitingDetails() bool {
	return s.flow != nil
}

// Flow returns the active escalation flow, nil when idle
func (s *ChatSession) Flow() *EscalationFlow {
	return s.flow
}

// Disconnected reports the advisory connection state. It is set when a
// search call fails and never blocks further sends.
func (s *ChatSession) Disconnected() bool {
	return s.disconnected
}

// SendMessage handles one user input. While an escalation flow is active
// the text is submitted as escalation details; otherwise it is a search
// query. API failures never propagate: they become synthetic bot
// messages. The newly appended messages are returned for rendering.
func (s *ChatSession) SendMessage(ctx context.Context, text string) []Message {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if s.flow != nil {
		return s.submitEscalationDetails(ctx, text)
	}
	return s.search(ctx, text)
}

func (s *ChatSession) submitEscalationDetails(ctx context.Context, feedback string) []Message {
	flow := s.flow
	userMsg := s.append(Message{
		ID:     fmt.Sprintf("user-%d", s.nextSeq()),
		Text:   feedback,
		IsUser: true,
	})

	resp, err := s.api.Escalate(ctx, EscalateRequest{
		UserQuery:           flow.UserQuery,
		AIAnswer:            flow.AIAnswer,
		UserFeedback:        feedback,
		ConversationHistory: flow.ConversationHistory,
	})

	// The flow is consumed either way; a failed submission is not retried.
	s.flow = nil

	if err != nil {
		LogWarn("Escalation failed: %v", err)
		errMsg := s.append(Message{
			ID:   fmt.Sprintf("error-%d", s.nextSeq()),
			Text: fmt.Sprintf("Failed to submit your ticket: %v. Please try again.", err),
		})
		return []Message{userMsg, errMsg}
	}

	okMsg := s.append(Message{
		ID: fmt.Sprintf("success-%d", s.nextSeq()),
		Text: fmt.Sprintf("✅ Your ticket has been successfully submitted!\n\n"+
			"**Ticket ID: %s**\n\nThank you for providing the details. An admin will "+
			"review your issue shortly and get back to you with a solution.", resp.TicketID),
	})
	return []Message{userMsg, okMsg}
}

func (s *ChatSession) search(ctx context.Context, query string) []Message {
	userMsg := s.append(Message{
		ID:     fmt.Sprintf("user-%d", s.nextSeq()),
		Text:   query,
		IsUser: true,
	})

	// Full history including this message, so the API can answer follow-ups.
	history := make([]HistoryEntry, 0, len(s.current.Messages))
	for _, m := range s.current.Messages {
		history = append(history, HistoryEntry{Role: historyRole(m), Content: m.Text})
	}

	resp, err := s.api.Search(ctx, SearchRequest{
		Query:               query,
		ConversationHistory: history,
		ConversationID:      s.current.ID,
	})
	if err != nil {
		LogWarn("Search failed: %v", err)
		s.disconnected = true
		errMsg := s.append(Message{
			ID:   fmt.Sprintf("error-%d", s.nextSeq()),
			Text: fmt.Sprintf("Sorry, I encountered an error: %v. Please try again or escalate your issue.", err),
		})
		return []Message{userMsg, errMsg}
	}

	botMsg := s.append(Message{
		ID:   fmt.Sprintf("bot-%d", s.nextSeq()),
		Text: resp.Answer,
	})
	return []Message{userMsg, botMsg}
}

// Escalate opens an escalation flow for the given bot answer. The
// reported user query is the first real user message, not the latest
// one: escalation always names the original issue. Returns the appended
// ask-details prompt, or nil when there is nothing to escalate.
func (s *ChatSession) Escalate(botMsg *Message) *Message {
	if botMsg == nil || botMsg.IsUser {
		return nil
	}

	userQuery := "Unknown query"
	for _, m := range s.current.Messages {
		if m.IsUser && m.ID != "welcome" {
			userQuery = m.Text
			break
		}
	}

	// Everything except the welcome message and flow-generated notices.
	var history []HistoryEntry
	for _, m := range s.current.Messages {
		if m.IsSystem() {
			continue
		}
		history = append(history, HistoryEntry{Role: historyRole(m), Content: m.Text})
	}

	s.flow = &EscalationFlow{
		Stage:               "waiting_details",
		UserQuery:           userQuery,
		AIAnswer:            botMsg.Text,
		ConversationHistory: history,
	}

	prompt := s.append(Message{
		ID:   fmt.Sprintf("ask-details-%d", s.nextSeq()),
		Text: AskDetailsText,
	})
	return &prompt
}

// LastAnswer returns the most recent escalatable bot message, nil if none
func (s *ChatSession) LastAnswer() *Message {
	for i := len(s.current.Messages) - 1; i >= 0; i-- {
		m := s.current.Messages[i]
		if !m.IsUser && !m.IsSystem() {
			return &s.current.Messages[i]
		}
	}
	return nil
}

// StartNewConversation makes a fresh conversation current. Prior
// conversations stay in the session keyed by id; a pending escalation
// flow is abandoned unconditionally.
func (s *ChatSession) StartNewConversation() *Conversation {
	now := s.clock()()
	conv := &Conversation{
		ID: fmt.Sprintf("%d-%d", now.UnixNano(), s.nextSeq()),
		Messages: []Message{{
			ID:        "welcome",
			Text:      WelcomeText,
			Timestamp: now,
		}},
	}
	s.conversations[conv.ID] = conv
	s.current = conv
	s.flow = nil
	return conv
}

// Conversations returns all conversations created in this session
func (s *ChatSession) Conversations() map[string]*Conversation {
	return s.conversations
}

func (s *ChatSession) append(m Message) Message {
	if m.Timestamp.IsZero() {
		m.Timestamp = s.clock()()
	}
	s.current.Messages = append(s.current.Messages, m)
	return m
}

func (s *ChatSession) nextSeq() int {
	s.seq++
	return s.seq
}

func (s *ChatSession) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

func historyRole(m Message) string {
	if m.IsUser {
		return RoleUser
	}
	return RoleAssistant
}
