// Package api wraps outbound HTTP calls to the clinic platform.
//
// Every request picks up the stored bearer token when one exists, and
// every 401 reports back to the caller while signalling session
// invalidation exactly once. Screens talk to this package, never to
// net/http directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/log"
)

// Client is the clinic platform API client
type Client struct {
	baseURL     string
	httpClient  *http.Client
	store       auth.Store
	invalidator *auth.Invalidator
	logger      *log.Logger
}

// NewClient creates a platform API client.
//
// The store supplies the bearer token at dispatch time; the invalidator
// receives the session-invalidation signal on 401.
func NewClient(baseURL string, store auth.Store, invalidator *auth.Invalidator, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:       store,
		invalidator: invalidator,
		logger:      logger.With("component", "api"),
	}
}

// SetTimeout overrides the per-request timeout
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// SetHTTPClient replaces the underlying HTTP client (tests)
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpClient = h
}

// errorBody is the error payload the platform returns on failures
type errorBody struct {
	Message string `json:"message"`
}

// do performs one API call and decodes a successful response into target.
//
// It returns the bearer token that was attached to the request, so callers
// that persist response data can verify the session hasn't changed since
// dispatch (see refreshProfile). Bodies are never logged.
func (c *Client) do(ctx context.Context, method, path string, body, target any) (string, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Snapshot the token at dispatch time. Public endpoints proceed
	// without it.
	session, err := c.store.Load(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "token lookup failed, sending unauthenticated", "error", err.Error())
	}
	tokenUsed := session.Token
	if tokenUsed != "" {
		req.Header.Set("Authorization", "Bearer "+tokenUsed)
	}

	c.logger.DebugContext(ctx, "api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tokenUsed, &Error{Kind: KindNetwork, Cause: err}
	}
	defer resp.Body.Close()

	if err := c.classify(ctx, resp, method, path); err != nil {
		return tokenUsed, err
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return tokenUsed, &Error{Kind: KindDecode, Status: resp.StatusCode, Cause: err}
		}
	}

	return tokenUsed, nil
}

// classify maps a non-2xx response to an Error and fires the
// invalidation signal on 401.
func (c *Client) classify(ctx context.Context, resp *http.Response, method, path string) error {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	switch {
	case status == http.StatusUnauthorized:
		c.logger.InfoContext(ctx, "unauthorized response", "method", method, "path", path)
		// Dual handling: the caller still gets the error, and the
		// session is invalidated as a cross-cutting side effect. The
		// invalidator coalesces concurrent 401s.
		if c.invalidator != nil {
			c.invalidator.Invalidate(ctx, auth.ReasonUnauthorized)
		}
		return &Error{Kind: KindUnauthorized, Status: status}

	case status >= 400 && status < 500:
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &Error{Kind: KindClient, Status: status, Message: eb.Message}

	default:
		return &Error{Kind: KindServer, Status: status}
	}
}
