// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Fixed collection names.
const (
	ProfilesCollection = "profiles"
	UploadsCollection  = "uploads"
)

/*
EnsureAll runs at startup for the fixed collections. Resource collections are
numerous and created on demand, so they are ensured on first write through
EnsureResourceCollection. Every ensure is idempotent; errors are aggregated so
startup fails with the full picture.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string
	if err := ensureIndexSet(ctx, db.Collection(ProfilesCollection), profileIndexes()); err != nil {
		problems = append(problems, ProfilesCollection+": "+err.Error())
	}
	if err := ensureIndexSet(ctx, db.Collection(UploadsCollection), uploadIndexes()); err != nil {
		problems = append(problems, UploadsCollection+": "+err.Error())
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

var ensured sync.Map // "db.collection" -> struct{}

// EnsureResourceCollection creates the listing indexes on one resource
// collection. Successful calls are remembered for the life of the process.
func EnsureResourceCollection(ctx context.Context, db *mongo.Database, name string) error {
	key := db.Name() + "." + name
	if _, ok := ensured.Load(key); ok {
		return nil
	}
	if err := ensureIndexSet(ctx, db.Collection(name), resourceIndexes(name)); err != nil {
		return err
	}
	ensured.Store(key, struct{}{})
	return nil
}

func profileIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_profiles_uid"),
		},
		{
			Keys:    bson.D{{Key: "display_name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_profiles_displaynameci__id"),
		},
	}
}

func uploadIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// "My uploads", newest first
		{
			Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("idx_uploads_uid_createdat__id"),
		},
		{
			Keys:    bson.D{{Key: "collection", Value: 1}, {Key: "resource_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_uploads_collection_resource"),
		},
	}
}

func resourceIndexes(coll string) []mongo.IndexModel {
	n := strings.ToLower(coll)
	return []mongo.IndexModel{
		// Library listing: active resources in title order
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "title_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_" + n + "_status_titleci__id"),
		},
		{
			Keys:    bson.D{{Key: "subject_ci", Value: 1}, {Key: "chapter", Value: 1}},
			Options: options.Index().SetName("idx_" + n + "_subjectci_chapter"),
		},
		{
			Keys:    bson.D{{Key: "board", Value: 1}, {Key: "year", Value: -1}},
			Options: options.Index().SetName("idx_" + n + "_board_year"),
		},
		{
			Keys:    bson.D{{Key: "uploader_uid", Value: 1}},
			Options: options.Index().SetName("idx_" + n + "_uploader"),
		},
	}
}

/* -------------------------------------------------------------------------- */
/* Reconcile a desired index set against what the collection has              */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func isUnique(b *bool) bool { return b != nil && *b }

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()), zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

// ensureIndexSet creates each model unless an index with the same keys and
// uniqueness exists. An index with the same keys but a different name or
// uniqueness is dropped and recreated.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		// A collection that does not exist yet has no indexes to reconcile.
		existing = map[string]existingIndex{}
	}

	var errs []string
	for _, m := range models {
		var name string
		var unique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			unique = m.Options.Unique
		}
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			if isUnique(ex.Unique) == isUnique(unique) && (name == "" || ex.Name == name) {
				continue
			}
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop %s failed: %v", coll.Name(), name, ex.Name, err))
				continue
			}
			zap.L().Info("dropped index to realign",
				zap.String("collection", coll.Name()),
				zap.String("from", ex.Name),
				zap.String("to", name))
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isUnique(unique) && mongo.IsDuplicateKeyError(err) {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), name))
				continue
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.String("keys", sig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", isUnique(unique)),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
