package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Default search tuning, matching the web front end
const (
	DefaultTopK                = 5
	DefaultSimilarityThreshold = 0.7
)

// Client is a typed client for the support-ticket API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL returns the API base URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health probes GET /health; any 2xx means healthy
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

// Stats fetches the admin dashboard counters
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Tickets lists escalated tickets, optionally filtered by status
func (c *Client) Tickets(ctx context.Context, status string) ([]Ticket, error) {
	path := "/admin/tickets"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var tickets []Ticket
	if err := c.get(ctx, path, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Ticket fetches a single ticket with its comment thread
func (c *Client) Ticket(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	if err := c.get(ctx, "/tickets/"+url.PathEscape(id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Search runs a similarity search with optional conversation context
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if req.TopK == 0 {
		req.TopK = DefaultTopK
	}
	if req.SimilarityThreshold == 0 {
		req.SimilarityThreshold = DefaultSimilarityThreshold
	}
	var resp SearchResponse
	if err := c.post(ctx, "/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuickSearch runs the free-text GET search used by the dashboard filter
func (c *Client) QuickSearch(ctx context.Context, query string) (*QuickSearchResponse, error) {
	var resp QuickSearchResponse
	if err := c.get(ctx, "/search?query="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Escalate hands a chat conversation to the admin team as a new ticket
func (c *Client) Escalate(ctx context.Context, req EscalateRequest) (*EscalateResponse, error) {
	var resp EscalateResponse
	if err := c.post(ctx, "/escalate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Resolve marks a ticket resolved with the admin's solution
func (c *Client) Resolve(ctx context.Context, ticketID, solution string) error {
	return c.post(ctx, "/admin/resolve", ResolveRequest{TicketID: ticketID, Solution: solution}, nil)
}

// AddComment appends a comment to a ticket's thread
func (c *Client) AddComment(ctx context.Context, req CommentRequest) error {
	return c.post(ctx, "/tickets/comment", req, nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	LogDebug("%s %s", req.Method, req.URL.Path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
