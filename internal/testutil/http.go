// Package testutil holds the helpers shared by handler tests: a fake
// backend server, token builders, and request plumbing.
package testutil

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/backend"
)

// SessionManager returns a throwaway cookie-session manager for handler
// tests. Cookies are plain HTTP so httptest recorders can read them.
func SessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef", auth.DefaultSessionName, "",
		time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("auth.NewSessionManager: %v", err)
	}
	return sm
}

// NewBackendClient starts a fake backend server for the duration of the
// test and returns a client pointed at it. The handler sees paths with
// the /api prefix, matching production URLs.
func NewBackendClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := backend.New(backend.Config{
		BaseURL: srv.URL + "/api",
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	return client
}

// Token returns a JWT-shaped token whose exp claim is at the given time.
// The signature is garbage; only the claim matters to this app.
func Token(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return header + "." + payload + ".sig"
}

// LiveToken returns a token that expires an hour from now.
func LiveToken(t *testing.T) string {
	t.Helper()
	return Token(t, time.Now().Add(time.Hour))
}

// AuthedContext carries a live bearer token, as the session middleware
// would attach for an admin request.
func AuthedContext(t *testing.T) context.Context {
	t.Helper()
	return backend.WithToken(context.Background(), LiveToken(t))
}

// AuthedRequest attaches a live bearer token to the request context.
func AuthedRequest(t *testing.T, r *http.Request) *http.Request {
	t.Helper()
	return r.WithContext(backend.WithToken(r.Context(), LiveToken(t)))
}
