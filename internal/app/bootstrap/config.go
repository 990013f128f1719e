// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TaskHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, access_secret, etc.
//   - Environment variables: TASKHUB_MONGO_URI, TASKHUB_ACCESS_SECRET, etc.
//   - Command-line flags: --mongo_uri, --access_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "taskhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "access_secret", Default: "dev-access-secret-change-me", Desc: "Access token signing secret (must be strong in production)"},
	{Name: "refresh_secret", Default: "dev-refresh-secret-change-me", Desc: "Refresh token signing secret (must differ from access_secret)"},

	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID for id_token sign-in (blank disables it)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TASKHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AccessSecret:  appValues.String("access_secret"),
		RefreshSecret: appValues.String("refresh_secret"),

		GoogleClientID: appValues.String("google_client_id"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// TaskHub validates the MongoDB URI format to catch configuration errors
// before attempting to connect, and refuses to start in production with
// the development token secrets.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AccessSecret == appCfg.RefreshSecret {
		return fmt.Errorf("access_secret and refresh_secret must differ")
	}

	if coreCfg.Env == "prod" {
		if appCfg.AccessSecret == "dev-access-secret-change-me" ||
			appCfg.RefreshSecret == "dev-refresh-secret-change-me" {
			return fmt.Errorf("token secrets must be set in production")
		}
	}

	return nil
}
