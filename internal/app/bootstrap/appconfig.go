// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level); AppConfig is everything specific to this frontend. There is no
// database here: every piece of content comes from the REST backend named
// by APIBaseURL.
type AppConfig struct {
	// APIBaseURL is the content backend's API root,
	// e.g. "http://localhost:4000/api".
	APIBaseURL string

	// BackendTimeout bounds each backend request.
	BackendTimeout time.Duration

	// Session management configuration.
	SessionKey    string        // secret key for signing session cookies
	SessionName   string        // cookie name (default: ngohub-session)
	SessionDomain string        // cookie domain (blank means current host)
	SessionTTL    time.Duration // how long an admin session lives

	// PublicCacheTTL sets Cache-Control max-age on anonymous public pages.
	// Zero disables caching headers.
	PublicCacheTTL time.Duration

	// SiteName is the fallback site identity shown until the organization
	// profile has loaded from the backend.
	SiteName string
}
