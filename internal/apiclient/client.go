package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/session"
)

// Result is the normalized outcome of every backend call. HTTP-level
// failures are carried as data, never as a Go error: callers branch on
// Err/Status instead of unwrapping.
type Result struct {
	Data   json.RawMessage
	Err    string
	Status int
}

func (r Result) OK() bool {
	return r.Err == "" && r.Status >= 200 && r.Status < 300
}

// DecodeInto unmarshals the success payload into v.
func (r Result) DecodeInto(v interface{}) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Data, v)
}

// SessionSource yields the credential attached to authenticated calls.
// *session.Manager satisfies it.
type SessionSource interface {
	Current() session.Session
}

// UnauthorizedHandler runs when the backend answers 401; it is expected
// to tear the session down and notify the presentation layer.
type UnauthorizedHandler func(ctx context.Context)

// Client is the single chokepoint for outbound calls to the
// intelligence API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       SessionSource
	onUnauthorized UnauthorizedHandler
	logger         logger.ILogger
}

func New(baseURL string, timeout time.Duration, sessions SessionSource, log logger.ILogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		logger:     log,
	}
}

// OnUnauthorized registers the 401 teardown hook. Set once at wiring
// time, before any requests are made.
func (c *Client) OnUnauthorized(h UnauthorizedHandler) {
	c.onUnauthorized = h
}

// RequestOptions tune a single call.
type RequestOptions struct {
	Headers  map[string]string
	SkipAuth bool
}

// Do performs one call against a server-relative endpoint. When a token
// is present and auth is not skipped, an Authorization header is
// attached; when absent, the call simply goes out unauthenticated and
// the backend decides.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}, opts *RequestOptions) Result {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Result{Err: err.Error(), Status: 0}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return Result{Err: err.Error(), Status: 0}
	}

	req.Header.Set("Content-Type", "application/json")
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}
	if opts == nil || !opts.SkipAuth {
		if s := c.sessions.Current(); s.HasToken() {
			req.Header.Set("Authorization", s.AuthorizationValue())
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Network error"
		}
		c.logger.Warn("ApiClient", "Request failed", map[string]interface{}{
			"endpoint": endpoint, "error": msg,
		})
		return Result{Err: msg, Status: 0}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: err.Error(), Status: 0}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("ApiClient", "Unauthorized response, tearing session down", map[string]interface{}{
			"endpoint": endpoint,
		})
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return Result{Err: "Unauthorized", Status: http.StatusUnauthorized}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Err: extractErrorMessage(raw, resp.StatusCode), Status: resp.StatusCode}
	}

	return Result{Data: raw, Status: resp.StatusCode}
}

func (c *Client) Get(ctx context.Context, endpoint string, opts *RequestOptions) Result {
	return c.Do(ctx, http.MethodGet, endpoint, nil, opts)
}

func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, opts *RequestOptions) Result {
	return c.Do(ctx, http.MethodPost, endpoint, body, opts)
}

func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, opts *RequestOptions) Result {
	return c.Do(ctx, http.MethodPut, endpoint, body, opts)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body interface{}, opts *RequestOptions) Result {
	return c.Do(ctx, http.MethodPatch, endpoint, body, opts)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts *RequestOptions) Result {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, opts)
}

// extractErrorMessage pulls a human-readable message out of an error
// body. The backend answers either {"message": "..."} or
// {"detail": "..."}; validation errors (422) come back as
// {"detail": [{"msg": "..."}, ...]} and are joined with ", ".
// An unparseable body degrades to a generic status-code message.
func extractErrorMessage(raw []byte, status int) string {
	var body struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Sprintf("Request failed with status %d", status)
	}

	if body.Message != "" {
		return body.Message
	}

	if len(body.Detail) > 0 {
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				msgs = append(msgs, it.Msg)
			}
			return strings.Join(msgs, ", ")
		}

		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
			return detail
		}
	}

	return fmt.Sprintf("Request failed with status %d", status)
}
