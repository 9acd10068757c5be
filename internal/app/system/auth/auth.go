package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/backend"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// DefaultSessionName is the cookie name the bootstrap passes to
	// NewSessionManager unless configuration overrides it.
	DefaultSessionName = "ngohub-session"

	// tokenCookie is the signed fallback cookie that carries only the
	// bearer token. If the session cookie is lost or fails to decode,
	// the token survives here and the session is rebuilt on next load.
	tokenCookie = "ngohub-token"

	isAuthKey = "is_authenticated"
	tokenKey  = "auth_token"
	userIDKey = "user_id"
	userName  = "user_name"
	userEmail = "user_email"
	userRole  = "user_role"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & “found?” flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the admin session: the gorilla cookie session is the
// primary store for the bearer token and the cached user, and a separate
// signed cookie keeps a redundant copy of the token alone.
type SessionManager struct {
	store  *sessions.CookieStore
	backup *securecookie.SecureCookie
	name   string
	ttl    time.Duration
	log    *zap.Logger
}

// NewSessionManager builds the session store. The `secure` flag controls
// whether cookies are marked Secure and which SameSite mode is used: in
// production (secure=true) cookies are Secure + SameSite=None so they work
// cross-site over HTTPS; in local dev over http://localhost, secure=false
// keeps them accepted with Lax.
func NewSessionManager(sessionKey, name, domain string, ttl time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	backup := securecookie.New([]byte(sessionKey), nil)
	backup.MaxAge(int(ttl / time.Second))

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{
		store:  store,
		backup: backup,
		name:   name,
		ttl:    ttl,
		log:    logger,
	}, nil
}

// Establish writes a fresh signed-in session after a successful login. The
// token is stored twice: inside the session and in the standalone signed
// cookie.
func (m *SessionManager) Establish(w http.ResponseWriter, r *http.Request, token string, user SessionUser) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[isAuthKey] = true
	sess.Values[tokenKey] = token
	sess.Values[userIDKey] = user.ID
	sess.Values[userName] = user.Name
	sess.Values[userEmail] = user.Email
	sess.Values[userRole] = user.Role
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	encoded, err := m.backup.Encode(tokenCookie, token)
	if err != nil {
		// The session cookie made it out, so the login still works;
		// only the fallback copy is missing.
		m.log.Warn("encode token backup cookie failed", zap.Error(err))
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Secure:   m.store.Options.Secure,
		HttpOnly: true,
		SameSite: m.store.Options.SameSite,
	})
	return nil
}

// Clear drops both the session and the backup token cookie. It is used on
// logout and whenever a dead token is detected.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.store.Get(r, m.name)
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	_ = sess.Save(r, w)

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Token returns the bearer token for the request: the session copy first,
// then the signed backup cookie. "" means signed out.
func (m *SessionManager) Token(r *http.Request) string {
	sess, err := m.store.Get(r, m.name)
	if err == nil {
		if tok, ok := sess.Values[tokenKey].(string); ok && tok != "" {
			return tok
		}
	}

	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	var tok string
	if err := m.backup.Decode(tokenCookie, c.Value, &tok); err != nil {
		return ""
	}
	return tok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSession injects the signed-in user and their bearer token into
// r.Context() when a live session exists. Expired tokens are treated as
// signed out but are NOT cleared here; only RequireAdmin redirects.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := m.Token(r)
		if tok == "" || backend.IsTokenExpired(tok) {
			next.ServeHTTP(w, r)
			return
		}

		r = r.WithContext(backend.WithToken(r.Context(), tok))

		sess, _ := m.store.Get(r, m.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Name:  getString(sess, userName),
				Email: getString(sess, userEmail),
				Role:  getString(sess, userRole),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin guards the admin routes. A missing or expired token clears
// both cookies and sends the browser to /login with a return parameter.
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (m *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := m.Token(r)
		if tok != "" && !backend.IsTokenExpired(tok) {
			next.ServeHTTP(w, r)
			return
		}
		if tok != "" {
			// A token that exists but no longer verifies is garbage;
			// drop it so the next request starts clean.
			m.Clear(w, r)
		}
		m.redirectToLogin(w, r)
	})
}

// ExpireIfUnauthorized is the response-time fallback to RequireAdmin's
// pre-flight guard: a backend call that came back Unauthorized despite a
// live-looking token means the token was revoked server-side. The session
// is torn down and the browser sent to /login, exactly as if the guard
// had caught it. Reports whether the request was handled.
func (m *SessionManager) ExpireIfUnauthorized(w http.ResponseWriter, r *http.Request, unauthorized bool) bool {
	if !unauthorized {
		return false
	}
	m.log.Info("backend rejected session token; signing out",
		zap.String("path", r.URL.Path))
	m.Clear(w, r)
	m.redirectToLogin(w, r)
	return true
}

func (m *SessionManager) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(currentURI(r))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// WithTestUser injects a SessionUser into the request context. Tests use it
// to simulate LoadSession without a cookie round-trip.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
