// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/app/system/paging"
	"github.com/dalemusser/paperhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store keeps resources in MongoDB, one collection per resolved collection
// name.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Create inserts r into r.Collection, assigning the ID and filling the
// folded fields, status, and timestamps when unset.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	r, err := Prepare(r, time.Now())
	if err != nil {
		return models.Resource{}, err
	}
	if err := indexes.EnsureResourceCollection(ctx, s.db, r.Collection); err != nil {
		zap.L().Warn("resource indexes not ensured",
			zap.String("collection", r.Collection), zap.Error(err))
	}
	if _, err := s.db.Collection(r.Collection).InsertOne(ctx, r); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Resource{}, ErrDuplicate
		}
		return models.Resource{}, err
	}
	return r, nil
}

// Get returns one resource from coll.
func (s *Store) Get(ctx context.Context, coll string, id primitive.ObjectID) (models.Resource, error) {
	var r models.Resource
	err := s.db.Collection(coll).FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	if r.Collection == "" {
		r.Collection = coll
	}
	return r, nil
}

// Delete removes one resource from coll.
func (s *Store) Delete(ctx context.Context, coll string, id primitive.ObjectID) error {
	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one title-ordered page of active resources from coll.
func (s *Store) List(ctx context.Context, coll string, q ListQuery) (Page, error) {
	q = q.Normalize()
	clauses := []bson.M{{"status": models.StatusActive}}
	if q.Board != "" {
		clauses = append(clauses, bson.M{"board": q.Board})
	}
	if q.Subject != "" {
		clauses = append(clauses, bson.M{"subject_ci": text.Fold(q.Subject)})
	}
	if q.Chapter != "" {
		clauses = append(clauses, bson.M{"chapter": q.Chapter})
	}
	if q.Year != "" {
		clauses = append(clauses, bson.M{"year": q.Year})
	}
	if lo, hi := text.PrefixRange(q.Search); lo != "" {
		clauses = append(clauses, bson.M{"title_ci": bson.M{"$gte": lo, "$lt": hi}})
	}

	cfg := paging.ConfigureKeyset(q.Before, q.After, q.Limit)
	if ks := cfg.KeysetWindow("title_ci"); ks != nil {
		clauses = append(clauses, ks)
	}
	find := options.Find()
	cfg.ApplyToFind(find, "title_ci")

	cur, err := s.db.Collection(coll).Find(ctx, bson.M{"$and": clauses}, find)
	if err != nil {
		return Page{}, err
	}
	defer cur.Close(ctx)

	var rows []models.Resource
	if err := cur.All(ctx, &rows); err != nil {
		return Page{}, err
	}
	return BuildPage(rows, cfg, q), nil
}

// BuildPage orders, trims, and cursors a fetched batch.
func BuildPage(rows []models.Resource, cfg paging.KeysetConfig, q ListQuery) Page {
	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}
	res := paging.TrimPage(&rows, q.Before, q.After, q.Limit)
	prev, next := paging.BuildCursors(rows,
		func(r models.Resource) string { return r.TitleCI },
		func(r models.Resource) primitive.ObjectID { return r.ID },
	)
	if rows == nil {
		rows = []models.Resource{}
	}
	p := Page{Items: rows, Result: res}
	if res.HasPrev {
		p.Prev = prev
	}
	if res.HasNext {
		p.Next = next
	}
	return p
}

// Prepare validates r for insertion and fills the derived fields. Both
// backends call it so documents look the same wherever they are stored.
func Prepare(r models.Resource, now time.Time) (models.Resource, error) {
	if strings.TrimSpace(r.Collection) == "" {
		return models.Resource{}, ErrNoCollection
	}
	if strings.TrimSpace(r.Title) == "" {
		return models.Resource{}, ErrNoTitle
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	r.TitleCI = text.Fold(r.Title)
	if r.Subject != "" {
		r.SubjectCI = text.Fold(r.Subject)
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
	now = now.UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = &now
	return r, nil
}
