// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/backend"
)

// ConnectDB fills the WAFFLE connect slot. There is no database; this
// builds the REST client for the content backend. Construction never
// dials out, so a down backend does not block startup: public pages fall
// back to embedded content until it answers.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := backend.New(backend.Config{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.BackendTimeout,
		Logger:  logger,
	})
	if err != nil {
		return DBDeps{}, err
	}
	logger.Info("backend client ready", zap.String("api_base_url", appCfg.APIBaseURL))
	return DBDeps{Backend: client}, nil
}

// EnsureSchema is a no-op: all storage lives behind the backend API.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
