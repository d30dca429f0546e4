package internal

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// stubChatAPI scripts search/escalate outcomes for session tests
type stubChatAPI struct {
	searchAnswer   string
	searchErr      error
	escalateTicket string
	escalateErr    error

	searchCalls   []SearchRequest
	escalateCalls []EscalateRequest
}

func (s *stubChatAPI) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	s.searchCalls = append(s.searchCalls, req)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return &SearchResponse{Answer: s.searchAnswer}, nil
}

func (s *stubChatAPI) Escalate(ctx context.Context, req EscalateRequest) (*EscalateResponse, error) {
	s.escalateCalls = append(s.escalateCalls, req)
	if s.escalateErr != nil {
		return nil, s.escalateErr
	}
	return &EscalateResponse{TicketID: s.escalateTicket, Message: "Ticket created"}, nil
}

func TestNewChatSession_StartsWithWelcome(t *testing.T) {
	session := NewChatSession(&stubChatAPI{})

	msgs := session.Messages()
	if len(msgs) != 1 {
		t.Fatalf("new session has %d messages, want 1", len(msgs))
	}
	if msgs[0].ID != "welcome" || msgs[0].IsUser {
		t.Errorf("first message = %+v, want bot welcome", msgs[0])
	}
	if session.AwaitingDetails() {
		t.Error("new session should not await escalation details")
	}
	if got := session.Current().Title(); got != "New Conversation" {
		t.Errorf("Title() = %q, want %q", got, "New Conversation")
	}
}

func TestChatSession_SendMessage_EmptyIsNoOp(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "answer"}
	session := NewChatSession(api)

	for _, input := range []string{"", "   ", "\t\n"} {
		replies := session.SendMessage(context.Background(), input)
		if replies != nil {
			t.Errorf("SendMessage(%q) = %+v, want nil", input, replies)
		}
	}
	if len(session.Messages()) != 1 {
		t.Errorf("message count = %d, want 1 (unchanged)", len(session.Messages()))
	}
	if len(api.searchCalls) != 0 {
		t.Errorf("search called %d times, want 0", len(api.searchCalls))
	}
}

func TestChatSession_SearchFlow(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "Replace brake pads"}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "brakes squeak")

	msgs := session.Messages()
	if len(msgs) != 3 {
		t.Fatalf("message count = %d, want 3", len(msgs))
	}
	if msgs[0].ID != "welcome" {
		t.Errorf("msgs[0].ID = %q, want welcome", msgs[0].ID)
	}
	if !msgs[1].IsUser || msgs[1].Text != "brakes squeak" {
		t.Errorf("msgs[1] = %+v, want user question", msgs[1])
	}
	if msgs[2].IsUser || msgs[2].Text != "Replace brake pads" {
		t.Errorf("msgs[2] = %+v, want bot answer", msgs[2])
	}

	// Search carried the full context including the new question.
	if len(api.searchCalls) != 1 {
		t.Fatalf("search called %d times, want 1", len(api.searchCalls))
	}
	req := api.searchCalls[0]
	if req.Query != "brakes squeak" {
		t.Errorf("search query = %q, want %q", req.Query, "brakes squeak")
	}
	if len(req.ConversationHistory) != 2 {
		t.Errorf("history length = %d, want 2", len(req.ConversationHistory))
	}
	if req.ConversationID != session.Current().ID {
		t.Errorf("conversation id = %q, want %q", req.ConversationID, session.Current().ID)
	}
}

func TestChatSession_SearchFailure(t *testing.T) {
	api := &stubChatAPI{searchErr: fmt.Errorf("connection refused")}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "anything")

	msgs := session.Messages()
	if len(msgs) != 3 {
		t.Fatalf("message count = %d, want 3", len(msgs))
	}
	last := msgs[len(msgs)-1]
	if !strings.HasPrefix(last.ID, "error-") {
		t.Errorf("last message id = %q, want error- prefix", last.ID)
	}
	if !strings.Contains(last.Text, "connection refused") {
		t.Errorf("error message %q should surface the cause", last.Text)
	}
	if !session.Disconnected() {
		t.Error("session should be marked disconnected after search failure")
	}

	// Disconnection is advisory: sends still go through.
	api.searchErr = nil
	api.searchAnswer = "recovered"
	session.SendMessage(context.Background(), "retry")
	if got := session.Messages()[len(session.Messages())-1].Text; got != "recovered" {
		t.Errorf("follow-up answer = %q, want %q", got, "recovered")
	}
}

func TestChatSession_Escalate(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "Replace brake pads"}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "brakes squeak")
	session.SendMessage(context.Background(), "which pads?")

	prompt := session.Escalate(session.LastAnswer())
	if prompt == nil {
		t.Fatal("Escalate() returned nil prompt")
	}
	if !strings.HasPrefix(prompt.ID, "ask-details-") {
		t.Errorf("prompt id = %q, want ask-details- prefix", prompt.ID)
	}
	if !session.AwaitingDetails() {
		t.Fatal("session should await escalation details")
	}

	flow := session.Flow()
	// The reported query is the FIRST real user message, not the latest.
	if flow.UserQuery != "brakes squeak" {
		t.Errorf("flow.UserQuery = %q, want %q", flow.UserQuery, "brakes squeak")
	}
	if flow.AIAnswer != "Replace brake pads" {
		t.Errorf("flow.AIAnswer = %q, want %q", flow.AIAnswer, "Replace brake pads")
	}
	// Welcome is excluded: user, bot, user, bot.
	if len(flow.ConversationHistory) != 4 {
		t.Errorf("history length = %d, want 4", len(flow.ConversationHistory))
	}
	for _, entry := range flow.ConversationHistory {
		if entry.Content == WelcomeText {
			t.Error("welcome message leaked into escalation history")
		}
	}
}

func TestChatSession_Escalate_NothingToEscalate(t *testing.T) {
	session := NewChatSession(&stubChatAPI{})

	if prompt := session.Escalate(session.LastAnswer()); prompt != nil {
		t.Errorf("Escalate() on fresh session = %+v, want nil", prompt)
	}
	if session.AwaitingDetails() {
		t.Error("no flow should be opened without a bot answer")
	}
	if len(session.Messages()) != 1 {
		t.Errorf("message count = %d, want 1", len(session.Messages()))
	}
}

func TestChatSession_EscalationDetails_Success(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "Replace brake pads", escalateTicket: "T-100"}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "brakes squeak")
	session.Escalate(session.LastAnswer())
	before := len(session.Messages())

	session.SendMessage(context.Background(), "still squeaks after replacement")

	msgs := session.Messages()
	if len(msgs) != before+2 {
		t.Fatalf("appended %d messages, want 2", len(msgs)-before)
	}
	if !msgs[before].IsUser || msgs[before].Text != "still squeaks after replacement" {
		t.Errorf("detail message = %+v", msgs[before])
	}
	last := msgs[len(msgs)-1]
	if !strings.HasPrefix(last.ID, "success-") || !strings.Contains(last.Text, "T-100") {
		t.Errorf("confirmation = %+v, want success message naming T-100", last)
	}
	if session.AwaitingDetails() {
		t.Error("flow should be cleared after successful escalation")
	}

	if len(api.escalateCalls) != 1 {
		t.Fatalf("escalate called %d times, want 1", len(api.escalateCalls))
	}
	req := api.escalateCalls[0]
	if req.UserQuery != "brakes squeak" || req.AIAnswer != "Replace brake pads" {
		t.Errorf("escalate request = %+v", req)
	}
	if req.UserFeedback != "still squeaks after replacement" {
		t.Errorf("feedback = %q", req.UserFeedback)
	}
}

func TestChatSession_EscalationDetails_Failure(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "answer", escalateErr: fmt.Errorf("boom")}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "question")
	session.Escalate(session.LastAnswer())
	session.SendMessage(context.Background(), "details")

	last := session.Messages()[len(session.Messages())-1]
	if !strings.HasPrefix(last.ID, "error-") {
		t.Errorf("last message id = %q, want error- prefix", last.ID)
	}
	if session.AwaitingDetails() {
		t.Error("flow should be cleared after failed escalation")
	}
	// Escalation failure is not a connection failure.
	if session.Disconnected() {
		t.Error("escalation failure should not mark the session disconnected")
	}
}

func TestChatSession_StartNewConversation(t *testing.T) {
	api := &stubChatAPI{searchAnswer: "answer"}
	session := NewChatSession(api)

	session.SendMessage(context.Background(), "question")
	session.Escalate(session.LastAnswer())
	oldID := session.Current().ID

	conv := session.StartNewConversation()

	if session.AwaitingDetails() {
		t.Error("pending escalation flow must be abandoned")
	}
	if len(session.Messages()) != 1 {
		t.Errorf("message count = %d, want 1", len(session.Messages()))
	}
	if conv.ID == oldID {
		t.Error("new conversation reused the old id")
	}
	// Prior conversations are retained, keyed by id.
	if _, ok := session.Conversations()[oldID]; !ok {
		t.Error("previous conversation was dropped")
	}
	// The next detail-free send is a search again, not escalation details.
	session.SendMessage(context.Background(), "fresh question")
	if len(api.escalateCalls) != 0 {
		t.Error("send after new conversation must not submit escalation")
	}
}

func TestConversation_Title(t *testing.T) {
	tests := []struct {
		name     string
		second   string
		want     string
		messages int
	}{
		{
			name:     "short question",
			second:   "brakes squeak",
			want:     "brakes squeak...",
			messages: 2,
		},
		{
			name:     "long question truncated to 30 runes",
			second:   strings.Repeat("a", 45),
			want:     strings.Repeat("a", 30) + "...",
			messages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := &Conversation{
				ID: "c1",
				Messages: []Message{
					{ID: "welcome", Text: WelcomeText},
					{ID: "user-1", Text: tt.second, IsUser: true},
				},
			}
			if got := conv.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage_IsSystem(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"welcome", true},
		{"ask-details-3", true},
		{"success-9", true},
		{"error-2", true},
		{"user-1", false},
		{"bot-4", false},
	}
	for _, tt := range tests {
		m := Message{ID: tt.id}
		if got := m.IsSystem(); got != tt.want {
			t.Errorf("IsSystem(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
