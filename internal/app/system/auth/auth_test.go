package auth_test

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

// makeToken builds a JWT-shaped token whose payload carries exp.
func makeToken(exp int64) string {
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp)))
	return header + "." + payload + ".sig"
}

// signIn runs Establish against a recorder and returns a request carrying
// the resulting cookies.
func signIn(t *testing.T, sm *auth.SessionManager, token string, user auth.SessionUser) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/login", nil)
	if err := sm.Establish(rec, req, token, user); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	next := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func liveToken() string    { return makeToken(time.Now().Add(time.Hour).Unix()) }
func expiredToken() string { return makeToken(time.Now().Add(-time.Hour).Unix()) }

func TestRequireAdmin_NoSession_RedirectsToLogin(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin/projects?page=2", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, "/login?return=") {
		t.Errorf("expected redirect to /login with return param, got %q", location)
	}
	if !strings.Contains(location, "%2Fadmin%2Fprojects") {
		t.Errorf("expected return param to carry the original path, got %q", location)
	}
}

func TestRequireAdmin_NoSession_API_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin/api/data", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAdmin_NoSession_HTMX_ReturnsHXRedirect(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); !strings.HasPrefix(hx, "/login") {
		t.Errorf("expected HX-Redirect to /login, got %q", hx)
	}
}

func TestRequireAdmin_LiveSession_Proceeds(t *testing.T) {
	sm := newTestSessionManager(t)

	called := false
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := signIn(t, sm, liveToken(), auth.SessionUser{ID: "u1", Role: "admin"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireAdmin_ExpiredToken_ClearsAndRedirects(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an expired token")
	}))

	req := signIn(t, sm, expiredToken(), auth.SessionUser{ID: "u1", Role: "admin"})
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	// Both cookies must come back expired.
	expired := 0
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			expired++
		}
	}
	if expired < 2 {
		t.Errorf("expected both cookies cleared, got %d expired cookie(s)", expired)
	}
}

func TestToken_FallsBackToBackupCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	tok := liveToken()

	req := signIn(t, sm, tok, auth.SessionUser{ID: "u1"})

	// Drop the session cookie, keep only the signed backup.
	var kept []*http.Cookie
	for _, c := range req.Cookies() {
		if c.Name != "test-session" {
			kept = append(kept, c)
		}
	}
	bare := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range kept {
		bare.AddCookie(c)
	}

	if got := sm.Token(bare); got != tok {
		t.Errorf("Token() via backup cookie = %q, want the original token", got)
	}
}

func TestToken_SignedOut_ReturnsEmpty(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	if got := sm.Token(req); got != "" {
		t.Errorf("Token() on bare request = %q, want empty", got)
	}
}

func TestLoadSession_InjectsUser(t *testing.T) {
	sm := newTestSessionManager(t)

	var got *auth.SessionUser
	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := signIn(t, sm, liveToken(), auth.SessionUser{
		ID:    "u1",
		Name:  "Asha Rao",
		Email: "asha@example.org",
		Role:  "admin",
	})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected a user in context")
	}
	if got.Name != "Asha Rao" || got.Role != "admin" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestLoadSession_ExpiredToken_NoUser(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("expired session must not inject a user")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := signIn(t, sm, expiredToken(), auth.SessionUser{ID: "u1"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestCurrentUser_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	user, ok := auth.CurrentUser(req)
	if ok {
		t.Error("expected ok to be false when no user in context")
	}
	if user != nil {
		t.Error("expected user to be nil when no user in context")
	}
}

func TestCurrentUser_WithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "u1", Role: "admin"})

	user, ok := auth.CurrentUser(req)
	if !ok || user == nil {
		t.Fatal("expected a user in context")
	}
	if user.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", user.Role)
	}
}
