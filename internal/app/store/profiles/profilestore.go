// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrExists   = errors.New("profile already exists")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(indexes.ProfilesCollection)}
}

// Create inserts a profile. A second profile for the same UID is ErrExists
// (the uid index is unique).
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = primitive.NewObjectID()
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.DisplayNameCI = text.Fold(p.DisplayName)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Profile{}, ErrExists
		}
		return models.Profile{}, err
	}
	return p, nil
}

// GetByUID loads the profile for a Firebase uid.
func (s *Store) GetByUID(ctx context.Context, uid string) (models.Profile, error) {
	var p models.Profile
	err := s.c.FindOne(ctx, bson.M{"uid": uid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Profile{}, ErrNotFound
	}
	return p, err
}

// Update is the set of user-editable profile fields.
type Update struct {
	DisplayName string
	City        string
	Institution string
	Bio         string
}

// UpdateByUID replaces the editable fields and returns the stored profile.
func (s *Store) UpdateByUID(ctx context.Context, uid string, u Update) (models.Profile, error) {
	name := strings.TrimSpace(u.DisplayName)
	now := time.Now().UTC()
	set := bson.M{
		"display_name":    name,
		"display_name_ci": text.Fold(name),
		"city":            strings.TrimSpace(u.City),
		"institution":     strings.TrimSpace(u.Institution),
		"bio":             strings.TrimSpace(u.Bio),
		"updated_at":      now,
	}
	return s.apply(ctx, uid, set)
}

// SetPhoto records a new profile photo URL.
func (s *Store) SetPhoto(ctx context.Context, uid, url string) (models.Profile, error) {
	return s.apply(ctx, uid, bson.M{"photo_url": url, "updated_at": time.Now().UTC()})
}

// SyncIdentity copies email fields from a fresh token onto the profile.
func (s *Store) SyncIdentity(ctx context.Context, uid, email string, verified bool) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": bson.M{
		"email":          strings.ToLower(strings.TrimSpace(email)),
		"email_verified": verified,
	}})
	return err
}

func (s *Store) apply(ctx context.Context, uid string, set bson.M) (models.Profile, error) {
	var p models.Profile
	err := s.c.FindOneAndUpdate(ctx, bson.M{"uid": uid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Profile{}, ErrNotFound
	}
	return p, err
}
