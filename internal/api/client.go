// Package api provides a client for the SpendBuddy REST backend.
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
	"sync"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrUnauthorized indicates the bearer token is expired or invalid.
// The client fires its session-expired hook once and returns this for the
// triggering request and every request after it, until Reset re-arms the
// client for a fresh sign-in.
var ErrUnauthorized = errors.New("api: unauthorized (session expired or invalid)")

// Error is a non-2xx backend response carrying the server-provided message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// TokenSource supplies the current bearer token, or "" when anonymous.
type TokenSource interface {
	Token() string
}

// Client talks to the SpendBuddy backend under <baseURL>/api.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client

	onExpire func()
	mu       sync.Mutex
	expired  bool
}

// NewClient creates a client for the given base URL. tokens may be nil for a
// purely anonymous client.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/api",
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// OnSessionExpired registers a hook invoked exactly once per expiry when any
// request comes back 401. The hook runs before the triggering call returns.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpire = fn
}

// do performs one request. body (if non-nil) is sent as JSON; out (if
// non-nil) receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	c.mu.Lock()
	dead := c.expired
	c.mu.Unlock()
	if dead {
		return ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expire()
		return ErrUnauthorized
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("api: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("api: parsing response: %w", err)
		}
	}
	return nil
}

// expire marks the client expired and fires the hook once, no matter how
// many in-flight requests hit the 401.
func (c *Client) expire() {
	c.mu.Lock()
	fire := !c.expired
	c.expired = true
	c.mu.Unlock()
	if fire && c.onExpire != nil {
		c.onExpire()
	}
}

// Reset re-arms an expired client so the login screen the expiry redirected
// to can reach the backend again. The expiry hook fires again on the next
// 401 after a Reset.
func (c *Client) Reset() {
	c.mu.Lock()
	c.expired = false
	c.mu.Unlock()
}

// decodeError surfaces the backend's {message} payload when present.
func decodeError(status int, data []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return &Error{Status: status, Message: payload.Message}
	}
	return &Error{Status: status}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
