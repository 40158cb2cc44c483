// internal/app/store/uploads/uploadstore.go
package uploadstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("upload not found")
	ErrDuplicate = errors.New("upload already recorded")
)

// Store is the per-user ledger of submitted resources.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(indexes.UploadsCollection)}
}

// Record adds a ledger row for a stored resource.
func (s *Store) Record(ctx context.Context, u models.Upload) (models.Upload, error) {
	u.ID = primitive.NewObjectID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Upload{}, ErrDuplicate
		}
		return models.Upload{}, err
	}
	return u, nil
}

// ListByUser returns uid's uploads, newest first, at most limit rows.
func (s *Store) ListByUser(ctx context.Context, uid string, limit int64) ([]models.Upload, error) {
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"uid": uid}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Upload{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the ledger row for a resource, scoped to its owner.
func (s *Store) Get(ctx context.Context, uid, collection, resourceID string) (models.Upload, error) {
	var u models.Upload
	err := s.c.FindOne(ctx, bson.M{"uid": uid, "collection": collection, "resource_id": resourceID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Upload{}, ErrNotFound
	}
	return u, err
}

// Delete removes a ledger row by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByUser returns how many resources uid has submitted.
func (s *Store) CountByUser(ctx context.Context, uid string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"uid": uid})
}
