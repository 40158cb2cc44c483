// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll makes sure the fixed collections exist and carry a JSON-Schema
// validator. Deployments without collMod (some DocumentDB versions) keep the
// collection and skip the validator.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	schemas := []struct {
		coll   string
		schema bson.M
	}{
		// Resource collections are created on first upload and carry no validator.
		{indexes.ProfilesCollection, profilesSchema()},
		{indexes.UploadsCollection, uploadsSchema()},
	}

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}

	var problems []string
	for _, s := range schemas {
		if err := ensure(ctx, db, s.coll, s.schema, slices.Contains(existing, s.coll)); err != nil {
			problems = append(problems, s.coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensure(ctx context.Context, db *mongo.Database, name string, schema bson.M, exists bool) error {
	if !exists {
		if err := db.CreateCollection(ctx, name); err != nil && !commandFailed(err, 48, "already exists") {
			return err
		}
		zap.L().Info("created collection", zap.String("collection", name))
	}

	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	err := db.RunCommand(ctx, cmd).Err()
	switch {
	case err == nil:
		zap.L().Info("validator ensured", zap.String("collection", name))
		return nil
	case commandFailed(err, 59, "no such command"), commandFailed(err, 115, "not supported", "not implemented"):
		zap.L().Info("validator skipped (unsupported)", zap.String("collection", name))
		return nil
	default:
		return err
	}
}

// commandFailed reports whether err is a server command error with the given
// code, or whose message contains one of the phrases.
func commandFailed(err error, code int32, phrases ...string) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

/* ------------------------- JSON-Schema docs ---------------------- */

func profilesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"uid", "display_name", "display_name_ci", "email_verified", "created_at"},
			"properties": bson.M{
				"uid":             bson.M{"bsonType": "string", "minLength": 1},
				"display_name":    bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"display_name_ci": bson.M{"bsonType": "string", "minLength": 1},
				"email":           bson.M{"bsonType": "string"},
				"email_verified":  bson.M{"bsonType": "bool"},
				"photo_url":       bson.M{"bsonType": "string"},
				"created_at":      bson.M{"bsonType": "date"},
				"updated_at":      bson.M{"bsonType": "date"},
			},
		},
	}
}

func uploadsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"uid", "collection", "resource_id", "created_at"},
			"properties": bson.M{
				"uid":          bson.M{"bsonType": "string", "minLength": 1},
				"collection":   bson.M{"bsonType": "string", "minLength": 1, "not": bson.M{"enum": bson.A{indexes.ProfilesCollection, indexes.UploadsCollection}}},
				"resource_id":  bson.M{"bsonType": "string", "minLength": 1},
				"title":        bson.M{"bsonType": "string"},
				"content_type": bson.M{"bsonType": "string"},
				"created_at":   bson.M{"bsonType": "date"},
			},
		},
	}
}
