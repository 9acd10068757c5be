// internal/domain/models/user.go
package models

// AdminUser is the identity the backend returns from /auth/login. It is
// cached in the session alongside the bearer token.
type AdminUser struct {
	Record

	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
