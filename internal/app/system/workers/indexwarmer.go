// internal/app/system/workers/indexwarmer.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// IndexWarmer is a background worker that ensures the resource indexes on
// every taxonomy collection that already exists in the database. Collections
// written by other clients (or before the indexes existed) get their indexes
// without waiting for the next write through this service.
type IndexWarmer struct {
	db       *mongo.Database
	log      *zap.Logger
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewIndexWarmer creates a warmer that runs once at Start and then every
// interval. interval <= 0 runs only the initial pass.
func NewIndexWarmer(db *mongo.Database, logger *zap.Logger, interval time.Duration) *IndexWarmer {
	return &IndexWarmer{
		db:       db,
		log:      logger,
		interval: interval,
		timeout:  2 * time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background loop.
func (w *IndexWarmer) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("index warmer started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *IndexWarmer) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("index warmer stopped")
}

func (w *IndexWarmer) run() {
	defer w.wg.Done()

	w.warm()
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.warm()
		}
	}
}

func (w *IndexWarmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	n, err := WarmOnce(ctx, w.db)
	if err != nil {
		w.log.Error("index warm-up failed", zap.Error(err))
		return
	}
	if n > 0 {
		w.log.Info("resource indexes ensured", zap.Int("collections", n))
	}
}

// WarmOnce ensures indexes on every existing collection whose name the
// taxonomy knows and returns how many it visited. Collections that are not
// resource collections (profiles, uploads, anything else) are left alone.
func WarmOnce(ctx context.Context, db *mongo.Database) (int, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	n := 0
	for _, name := range names {
		if _, ok := taxonomy.Lookup(name); !ok {
			continue
		}
		if err := indexes.EnsureResourceCollection(ctx, db, name); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
