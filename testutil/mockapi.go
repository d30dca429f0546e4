package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures one request received by the mock API
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type mockResponse struct {
	status int
	body   string
}

// MockAPI is an in-process stand-in for the support-ticket API. Canned
// responses are keyed by method and path; every request is recorded.
type MockAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]mockResponse
	requests  []RecordedRequest
}

// NewMockAPI starts a mock API server that shuts down with the test
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()
	m := &MockAPI{responses: make(map[string]mockResponse)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the base URL of the mock server
func (m *MockAPI) URL() string {
	return m.Server.URL
}

// Respond registers a canned response for method and path
func (m *MockAPI) Respond(method, path string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[method+" "+path] = mockResponse{status: status, body: body}
}

// Requests returns a copy of all recorded requests
func (m *MockAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// LastRequest returns the most recent request to method and path, nil if none
func (m *MockAPI) LastRequest(method, path string) *RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].Method == method && m.requests[i].Path == path {
			req := m.requests[i]
			return &req
		}
	}
	return nil
}

func (m *MockAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
	resp, ok := m.responses[r.Method+" "+r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"not found"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
