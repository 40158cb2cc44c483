// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema attaches JSON-Schema validators and creates the indexes on the
// fixed collections (profiles and the upload ledger). Resource collections
// are indexed on first write and by the background warmer.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	d := appCfg.TimeoutLong
	if d <= 0 {
		d = timeouts.DefaultLong
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("schema validators failed", zap.Error(err))
		return err
	}
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
