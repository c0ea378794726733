// Package api provides the HTTP client for the RAG chatbot backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is where the backend listens when run locally.
const DefaultBaseURL = "http://127.0.0.1:8000"

// genericErrorDetail is used when a failure response carries no detail field.
const genericErrorDetail = "the assistant backend returned an unexpected error"

// StatusError is a non-success HTTP response from the backend. Detail is
// the backend's own description when it provided one.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return e.Detail
}

// Client is a client for the chatbot backend API.
//
// The underlying http.Client deliberately carries no timeout: a question
// either resolves or the transport fails, and the UI gates submissions on
// a single in-flight request, so an abandoned call holds nothing but its
// own goroutine.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger for request/response debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = h
	}
}

// New creates a backend client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// askRequest is the request body for the chat endpoint.
type askRequest struct {
	Query string `json:"query"`
}

// askResponse is the success body from the chat endpoint.
type askResponse struct {
	Response string `json:"response"`
}

// errorResponse is the failure body shape used by the backend.
type errorResponse struct {
	Detail string `json:"detail"`
}

// HealthStatus is the backend's liveness report.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Ask sends a question to the backend and returns the assistant's reply.
// Exactly one request is issued per call; there is no retry.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return "", err
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/chat", body)
	if err != nil {
		return "", err
	}

	var reply askResponse
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return "", fmt.Errorf("malformed response from backend: %w", err)
	}
	if reply.Response == "" {
		return "", fmt.Errorf("backend response missing answer text")
	}

	return reply.Response, nil
}

// Health checks the backend's liveness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("malformed health response: %w", err)
	}
	return &status, nil
}

// doRequest performs an HTTP request against the backend.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("backend response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
		zap.String("request_id", reqID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(respBody, &errResp)
		detail := errResp.Detail
		if detail == "" {
			detail = genericErrorDetail
		}
		return nil, &StatusError{Code: resp.StatusCode, Detail: detail}
	}

	return respBody, nil
}
