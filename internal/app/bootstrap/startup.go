// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// TaskHub is a pure JSON API with no templates or caches to warm, so it
// only logs the configured auth surface.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("taskhub starting",
		zap.Bool("google_signin_enabled", appCfg.GoogleClientID != ""))
	return nil
}
