// internal/backend/client.go
//
// Package backend is the typed REST client for the content backend. It is
// the only way the app reads or writes content; there is no local database.
//
// Every exported call returns an envelope (Result) instead of a Go error:
// transport failures, non-2xx statuses, and unparseable bodies are all
// folded into {Success:false, Error:...} at this boundary so handlers never
// branch on error types. A 401, or a token found expired before the call is
// even issued, additionally sets Unauthorized so the caller can tear the
// session down.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Config configures the backend client.
type Config struct {
	// BaseURL is the backend API root, e.g. "http://localhost:4000/api".
	BaseURL string

	// Timeout bounds each request. Zero means defaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport (tests).
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Client talks to the content backend over REST.
type Client struct {
	baseURL string
	origin  string // baseURL with a trailing /api stripped; serves /uploads
	http    *http.Client
	log     *zap.Logger
}

// New validates the base URL and builds a client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("backend: base url is required")
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("backend: base url %q must be absolute", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		origin:  strings.TrimSuffix(base, "/api"),
		http:    httpClient,
		log:     logger,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// CloseIdleConnections drops the client's idle keep-alive connections.
// Called once at shutdown.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// Ping issues the cheapest unauthenticated read the API exposes and
// reports whether it answered. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, ce := c.do(ctx, http.MethodGet, "/profile", nil, "", false)
	if ce != nil {
		return fmt.Errorf("backend ping: %s", ce.message)
	}
	return nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Per-request auth token                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const tokenKey ctxKey = "backendToken"

// WithToken returns a context carrying the session's bearer token. The auth
// middleware attaches it for admin routes; public calls go out without one.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request execution                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// callError is the internal classification of a failed call before it is
// folded into an envelope.
type callError struct {
	message      string
	status       int
	unauthorized bool
}

// do executes one request and returns the raw response body. contentType is
// empty for multipart bodies that already carry their own header value in
// ct (the writer-computed boundary form).
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, authorized bool) ([]byte, *callError) {
	if authorized {
		tok := tokenFrom(ctx)
		if tok == "" || IsTokenExpired(tok) {
			// Pre-flight guard: never issue the call with a dead token.
			return nil, &callError{message: "session expired", unauthorized: true}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &callError{message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authorized {
		req.Header.Set("Authorization", "Bearer "+tokenFrom(ctx))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed", zap.String("path", path), zap.Error(err))
		return nil, &callError{message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &callError{message: err.Error(), status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ce := &callError{
			message:      errorMessage(raw, resp.StatusCode),
			status:       resp.StatusCode,
			unauthorized: resp.StatusCode == http.StatusUnauthorized,
		}
		c.log.Warn("backend returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", ce.message))
		return nil, ce
	}

	return raw, nil
}

// errorMessage pulls the backend's message field out of an error body,
// falling back to a synthesized status string when the body is not JSON or
// carries no message.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}

func jsonBody(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}
