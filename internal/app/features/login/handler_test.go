package login_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/features/login"
	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/backend"
)

func testToken(t *testing.T) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, time.Now().Add(time.Hour).Unix())))
	return header + "." + payload + ".sig"
}

func newTestHandler(t *testing.T, backendHandler http.HandlerFunc) (*login.Handler, *auth.SessionManager) {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	client, err := backend.New(backend.Config{
		BaseURL: srv.URL + "/api",
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session", "", 24*time.Hour, false, zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return login.NewHandler(client, sm, zap.NewNop()), sm
}

func postLogin(handler *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	defer func() { recover() }()
	handler.HandleLoginPost(rec, req)
	return rec
}

func TestHandleLoginPost_Success_EstablishesSessionAndRedirects(t *testing.T) {
	token := testToken(t)
	handler, sm := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user":  map[string]any{"_id": "u1", "name": "Asha", "email": "asha@example.org", "role": "admin"},
		})
	})

	rec := postLogin(handler, url.Values{
		"email":    {"asha@example.org"},
		"password": {"secret"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect: got %q, want /admin", loc)
	}

	// The issued cookies must round-trip back into a usable token.
	next := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	if got := sm.Token(next); got != token {
		t.Errorf("session token: got %q, want the issued token", got)
	}
}

func TestHandleLoginPost_BadCredentials_NoSession(t *testing.T) {
	handler, sm := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "Invalid credentials"})
	})

	rec := postLogin(handler, url.Values{
		"email":    {"asha@example.org"},
		"password": {"wrong"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Fatal("must not redirect on rejected login")
	}
	next := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	if got := sm.Token(next); got != "" {
		t.Errorf("no session token should exist, got %q", got)
	}
}

func TestHandleLoginPost_MissingFields_NoBackendCall(t *testing.T) {
	called := false
	handler, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	postLogin(handler, url.Values{"email": {"asha@example.org"}})
	postLogin(handler, url.Values{"password": {"secret"}})
	postLogin(handler, url.Values{"email": {"not-an-email"}, "password": {"secret"}})

	if called {
		t.Error("backend must not be called with incomplete credentials")
	}
}

func postSignup(handler *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	defer func() { recover() }()
	handler.HandleSignupPost(rec, req)
	return rec
}

func TestHandleSignupPost_Success_SignsInNewAdmin(t *testing.T) {
	token := testToken(t)
	handler, sm := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user":  map[string]any{"_id": "u2", "name": "Ravi", "email": "ravi@example.org", "role": "admin"},
		})
	})

	rec := postSignup(handler, url.Values{
		"name":     {"Ravi"},
		"email":    {"ravi@example.org"},
		"password": {"longenough"},
		"confirm":  {"longenough"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect: got %q, want /admin", loc)
	}

	next := httptest.NewRequest("GET", "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	if got := sm.Token(next); got != token {
		t.Errorf("session token: got %q, want the issued token", got)
	}
}

func TestHandleSignupPost_NoToken_RedirectsToLogin(t *testing.T) {
	handler, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"_id": "u2", "name": "Ravi"},
		})
	})

	rec := postSignup(handler, url.Values{
		"name":     {"Ravi"},
		"email":    {"ravi@example.org"},
		"password": {"longenough"},
		"confirm":  {"longenough"},
	})

	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?ok=") {
		t.Errorf("redirect: got %q, want /login?ok=...", loc)
	}
}

func TestHandleSignupPost_InvalidInput_NoBackendCall(t *testing.T) {
	called := false
	handler, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	postSignup(handler, url.Values{
		"email": {"ravi@example.org"}, "password": {"longenough"}, "confirm": {"longenough"},
	})
	postSignup(handler, url.Values{
		"name": {"Ravi"}, "email": {"not-an-email"}, "password": {"longenough"}, "confirm": {"longenough"},
	})
	postSignup(handler, url.Values{
		"name": {"Ravi"}, "email": {"ravi@example.org"}, "password": {"short"}, "confirm": {"short"},
	})
	postSignup(handler, url.Values{
		"name": {"Ravi"}, "email": {"ravi@example.org"}, "password": {"longenough"}, "confirm": {"different1"},
	})

	if called {
		t.Error("backend must not be called with invalid signup input")
	}
}

func TestHandleLoginPost_UnsafeReturnURL_Ignored(t *testing.T) {
	token := testToken(t)
	handler, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user":  map[string]any{"_id": "u1", "role": "admin"},
		})
	})

	rec := postLogin(handler, url.Values{
		"email":    {"asha@example.org"},
		"password": {"secret"},
		"return":   {"https://evil.example.com/phish"},
	})

	if loc := rec.Header().Get("Location"); strings.Contains(loc, "evil") {
		t.Errorf("external return URL must be rejected, got %q", loc)
	}
}
