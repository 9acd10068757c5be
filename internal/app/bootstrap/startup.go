// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/timeouts"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Startup runs one-time initialization after the backend client is built
// but before the HTTP handler. It wires the profile loader that gives
// every rendered page its site identity, and applies any timeout
// overrides from the environment.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied", zap.Int("count", n))
	}

	viewdata.SetFallbackSiteName(appCfg.SiteName)
	viewdata.SetProfileLoader(func(ctx context.Context) *models.Profile {
		res := deps.Backend.GetProfile(ctx)
		if !res.Success {
			return nil
		}
		return &res.Data
	})

	// Warm the profile so the first page view already carries the real
	// site identity. Failure is fine; pages fall back to the default name.
	warmCtx, cancel := context.WithTimeout(ctx, timeouts.Read())
	defer cancel()
	if res := deps.Backend.GetProfile(warmCtx); res.Success {
		logger.Info("organization profile loaded", zap.String("ngo_name", res.Data.NGOName))
	} else {
		logger.Warn("organization profile unavailable at startup",
			zap.String("error", res.Error), zap.String("fallback", appCfg.SiteName))
	}

	return nil
}
