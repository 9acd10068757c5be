// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down outbound resources. The backend client only holds
// an HTTP connection pool, so closing idle connections is all there is.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Backend != nil {
		deps.Backend.CloseIdleConnections()
		logger.Info("backend connections closed")
	}
	return nil
}
