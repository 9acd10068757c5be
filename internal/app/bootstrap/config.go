// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/inputval"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// appConfigKeys defines the configuration keys for this app. They are
// loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: NGOHUB_API_BASE_URL, NGOHUB_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:4000/api", Desc: "Content backend API root"},
	{Name: "backend_timeout", Default: "15s", Desc: "Per-request backend timeout (e.g., 15s, 1m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "ngohub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_ttl", Default: "24h", Desc: "Admin session lifetime"},

	{Name: "public_cache_ttl", Default: "5m", Desc: "Cache-Control max-age for anonymous public pages (0 disables)"},
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Fallback site name until the profile loads"},
}

// LoadConfig loads WAFFLE core config and app-specific config. Merging
// precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "NGOHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:     appValues.String("api_base_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 15*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionTTL:    appValues.Duration("session_ttl", 24*time.Hour),

		PublicCacheTTL: appValues.Duration("public_cache_ttl", 5*time.Minute),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backend client is built.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !inputval.IsValidHTTPURL(appCfg.APIBaseURL) {
		logger.Error("invalid backend API URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url must be a valid http(s) URL, got %q", appCfg.APIBaseURL)
	}
	if coreCfg.Env == "prod" && appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}
	if appCfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", appCfg.SessionTTL)
	}
	if appCfg.PublicCacheTTL < 0 {
		return fmt.Errorf("public_cache_ttl must not be negative, got %s", appCfg.PublicCacheTTL)
	}
	return nil
}
