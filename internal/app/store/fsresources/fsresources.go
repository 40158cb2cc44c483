// Package fsresources stores resources in Cloud Firestore, one top-level
// collection per resolved collection name. Document IDs are ObjectID hex
// strings so cursors and IDs are interchangeable with the MongoDB store.
package fsresources

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/app/system/paging"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Store struct {
	c   *firestore.Client
	log *zap.Logger
}

func New(c *firestore.Client, log *zap.Logger) *Store {
	return &Store{c: c, log: log}
}

func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	r, err := resourcestore.Prepare(r, time.Now())
	if err != nil {
		return models.Resource{}, err
	}
	_, err = s.c.Collection(r.Collection).Doc(r.ID.Hex()).Create(ctx, r)
	if status.Code(err) == codes.AlreadyExists {
		return models.Resource{}, resourcestore.ErrDuplicate
	}
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

func (s *Store) Get(ctx context.Context, coll string, id primitive.ObjectID) (models.Resource, error) {
	snap, err := s.c.Collection(coll).Doc(id.Hex()).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Resource{}, resourcestore.ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	var r models.Resource
	if err := snap.DataTo(&r); err != nil {
		return models.Resource{}, err
	}
	r.ID = id
	if r.Collection == "" {
		r.Collection = coll
	}
	return r, nil
}

func (s *Store) Delete(ctx context.Context, coll string, id primitive.ObjectID) error {
	_, err := s.c.Collection(coll).Doc(id.Hex()).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return resourcestore.ErrNotFound
	}
	return err
}

// List mirrors the MongoDB listing: active resources ordered by title_ci
// then document ID, with the same cursor encoding.
func (s *Store) List(ctx context.Context, coll string, q resourcestore.ListQuery) (resourcestore.Page, error) {
	q = q.Normalize()
	query := s.c.Collection(coll).Where("status", "==", models.StatusActive)
	if q.Board != "" {
		query = query.Where("board", "==", q.Board)
	}
	if q.Subject != "" {
		query = query.Where("subject_ci", "==", text.Fold(q.Subject))
	}
	if q.Chapter != "" {
		query = query.Where("chapter", "==", q.Chapter)
	}
	if q.Year != "" {
		query = query.Where("year", "==", q.Year)
	}
	if lo, hi := text.PrefixRange(q.Search); lo != "" {
		query = query.Where("title_ci", ">=", lo).Where("title_ci", "<", hi)
	}

	cfg := paging.ConfigureKeyset(q.Before, q.After, q.Limit)
	dir := firestore.Asc
	if cfg.Direction == paging.Backward {
		dir = firestore.Desc
	}
	query = query.OrderBy("title_ci", dir).OrderBy(firestore.DocumentID, dir)
	if cfg.Cursor != nil {
		query = query.StartAfter(cfg.Cursor.CI, cfg.Cursor.ID.Hex())
	}
	query = query.Limit(q.Limit + 1)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var rows []models.Resource
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return resourcestore.Page{}, err
		}
		id, err := primitive.ObjectIDFromHex(snap.Ref.ID)
		if err != nil {
			s.log.Warn("skipping resource with foreign document id",
				zap.String("collection", coll), zap.String("id", snap.Ref.ID))
			continue
		}
		var r models.Resource
		if err := snap.DataTo(&r); err != nil {
			return resourcestore.Page{}, err
		}
		r.ID = id
		rows = append(rows, r)
	}
	return resourcestore.BuildPage(rows, cfg, q), nil
}
