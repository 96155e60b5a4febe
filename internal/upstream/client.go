// Package upstream is the HTTP client for the complaints platform admin API.
// It owns the wire concerns the console needs everywhere: bearer auth, JSON
// serialization, cache-busting, and the error contract (status + extracted
// message + parsed body).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// APIError carries a failed upstream response: the HTTP status, a
// human-readable message extracted from the body, and the parsed body itself
// for callers that need field-level validation detail.
type APIError struct {
	Status  int
	Message string
	Body    any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
}

// messageExpr extracts the upstream error message: a `message` field when
// present, otherwise `error`. Values may be strings or arrays of strings.
const messageExpr = "message || error"

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	// BaseURL is the upstream API origin. Trailing slashes are trimmed.
	BaseURL string
	// HTTPClient is optional; a 30s-timeout client is used when nil.
	HTTPClient *http.Client
	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// Client issues requests against the upstream platform API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient constructs an upstream client.
func NewClient(opts ClientOptions) *Client {
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// BaseURL returns the normalized upstream origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping reports whether the upstream API is reachable. Any HTTP response,
// whatever its status, counts as reachable; only a transport failure errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("ping upstream: %w", err)
	}
	if cerr := resp.Body.Close(); cerr != nil {
		c.logger.WarnContext(ctx, "close upstream response body failed", "error", cerr)
	}
	return nil
}

// tokenKey carries the acting session's bearer token through contexts.
type tokenKey struct{}

// WithToken returns a context carrying the bearer token for upstream calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extracts the bearer token from a context, if any.
func TokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

// do performs one upstream call. A non-nil body is serialized as JSON. On
// 2xx the response body, when JSON, is decoded into out (out may be nil).
// On non-2xx it returns an *APIError. Transport failures return a plain
// wrapped error; only the HTTP status decides success once a response exists.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Every read must reflect current server state.
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "close upstream response body failed", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	parsed := parseBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(parsed, resp.StatusCode),
			Body:    parsed,
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// parseBody attempts a structured parse of the response text; on failure the
// raw text is kept as-is. A parse failure never fails the call.
func parseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return string(raw)
	}
	return parsed
}

// extractMessage pulls a usable message out of a parsed error body, joining
// array-valued messages with ", " and falling back to "HTTP <status>".
func extractMessage(body any, status int) string {
	fallback := fmt.Sprintf("HTTP %d", status)
	if body == nil {
		return fallback
	}

	result, err := jmespath.Search(messageExpr, body)
	if err != nil || result == nil {
		return fallback
	}

	switch v := result.(type) {
	case string:
		if v != "" {
			return v
		}
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return fallback
}
