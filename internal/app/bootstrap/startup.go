// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/app/system/workers"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// warmer is started by Startup and stopped by Shutdown.
var warmer *workers.IndexWarmer

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It applies the configured timeouts, refuses to start on a malformed
// taxonomy table, and starts the resource index warmer.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
		Upload: appCfg.TimeoutUpload,
	})

	if err := taxonomy.Validate(); err != nil {
		return fmt.Errorf("taxonomy table: %w", err)
	}
	logger.Info("taxonomy loaded",
		zap.Int("categories", len(taxonomy.Categories())),
		zap.Int("collections", len(taxonomy.KnownCollections())))

	if appCfg.ResourceBackend == BackendMongo {
		warmer = workers.NewIndexWarmer(deps.MongoDatabase, logger, appCfg.IndexWarmInterval)
		warmer.Start()
	}
	return nil
}
