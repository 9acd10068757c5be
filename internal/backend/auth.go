// internal/backend/auth.go
package backend

import (
	"context"
	"net/http"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Session is what a successful login yields: the bearer token this app
// persists in the admin session, plus the user identity for display.
type Session struct {
	Token string           `json:"token"`
	User  models.AdminUser `json:"user"`
}

// Login exchanges credentials for a backend session. Token issuance and
// validation live entirely in the backend; this app only stores the result.
func (c *Client) Login(ctx context.Context, email, password string) Result[Session] {
	payload := map[string]string{"email": email, "password": password}
	body, err := jsonBody(payload)
	if err != nil {
		return Result[Session]{Error: err.Error()}
	}
	raw, ce := c.do(ctx, http.MethodPost, "/auth/login", body, "application/json", false)
	if ce != nil {
		return fail[Session](ce)
	}
	var sess Session
	if err := decodeInto(raw, &sess, "data"); err != nil {
		return Result[Session]{Error: err.Error()}
	}
	sess.User.ResolveID()
	return ok(sess)
}

// Signup registers a new admin account (backend decides whether signups
// are open).
func (c *Client) Signup(ctx context.Context, name, email, password string) Result[Session] {
	payload := map[string]string{"name": name, "email": email, "password": password}
	res := mutate[Session](c, ctx, http.MethodPost, "/auth/signup", payload, "data")
	if res.Success {
		res.Data.User.ResolveID()
	}
	return res
}

// ChangePassword rotates the signed-in admin's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) Result[struct{}] {
	payload := map[string]string{"currentPassword": current, "newPassword": next}
	return mutate[struct{}](c, ctx, http.MethodPost, "/auth/change-password", payload)
}

// ForgotPassword asks the backend to send a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) Result[struct{}] {
	payload := map[string]string{"email": email}
	body, err := jsonBody(payload)
	if err != nil {
		return Result[struct{}]{Error: err.Error()}
	}
	_, ce := c.do(ctx, http.MethodPost, "/auth/forgot-password", body, "application/json", false)
	if ce != nil {
		return fail[struct{}](ce)
	}
	return ok(struct{}{})
}

// ResetPassword completes a reset flow with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) Result[struct{}] {
	payload := map[string]string{"password": password}
	body, err := jsonBody(payload)
	if err != nil {
		return Result[struct{}]{Error: err.Error()}
	}
	_, ce := c.do(ctx, http.MethodPost, "/auth/reset-password/"+token, body, "application/json", false)
	if ce != nil {
		return fail[struct{}](ce)
	}
	return ok(struct{}{})
}
