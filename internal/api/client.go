// Package api is the HTTP client for the Wiki Quiz service. It speaks the
// four endpoint shapes the service exposes and nothing else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// maxBodyBytes caps how much of a response body is read. Quizzes are small;
// anything larger is a misbehaving server.
const maxBodyBytes = 4 << 20

// ErrNotFound is returned when the service reports a missing quiz.
var ErrNotFound = errors.New("quiz not found")

// Error is a non-success response from the service. Detail carries the
// server's human-readable message when the body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("quiz service returned HTTP %d", e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// errorBody is the service's failure shape: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// generateRequest is the create-quiz request body.
type generateRequest struct {
	URL string `json:"url"`
}

// Client talks to one quiz service instance.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GenerateQuiz asks the service to create a quiz from the given article URL.
// The service returns its cached quiz when the URL was processed before.
func (c *Client) GenerateQuiz(ctx context.Context, articleURL string) (*quiz.Quiz, error) {
	body, err := json.Marshal(generateRequest{URL: articleURL})
	if err != nil {
		return nil, fmt.Errorf("encode generate request: %w", err)
	}

	var q quiz.Quiz
	if err := c.do(ctx, http.MethodPost, "/api/quiz/generate", body, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuizzes returns the quiz history in server order (newest first).
// Summaries never include question lists.
func (c *Client) ListQuizzes(ctx context.Context) ([]quiz.Summary, error) {
	var items []quiz.Summary
	if err := c.do(ctx, http.MethodGet, "/api/quiz/history", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetQuiz fetches the full quiz for an id, questions and entities included.
func (c *Client) GetQuiz(ctx context.Context, id int) (*quiz.Quiz, error) {
	var q quiz.Quiz
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quiz/%d", id), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// PreviewURL fetches just the article title for a URL.
func (c *Client) PreviewURL(ctx context.Context, articleURL string) (*quiz.Preview, error) {
	path := "/api/quiz/preview/url?url=" + url.QueryEscape(articleURL)
	var p quiz.Preview
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// do issues one request and decodes a JSON response into out. Non-2xx
// responses become *Error (or ErrNotFound for 404s), with the server's
// detail message preserved when present.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("quiz service request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Detail = eb.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// UserMessage extracts the message to show for a failed operation: the
// server's detail verbatim when the failure carried one, else fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
