package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures inserts test documents directly, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

func (f *Fixtures) DB() *mongo.Database { return f.db }

// CreateResource inserts an active resource into the collection its key
// resolves to.
func (f *Fixtures) CreateResource(ctx context.Context, key taxonomy.Key, title, subject string) models.Resource {
	f.t.Helper()
	r := models.Resource{
		ID:           primitive.NewObjectID(),
		Collection:   taxonomy.ResolveCollectionName(key),
		ResourceType: taxonomy.ResourcePDF,
		MainCategory: key.MainCategory,
		ContentType:  key.ContentType,
		Province:     key.Province,
		ClassLevel:   key.ClassLevel,
		Subject:      subject,
		SubjectCI:    text.Fold(subject),
		Title:        title,
		TitleCI:      text.Fold(title),
		URL:          "https://files.test/" + title + ".pdf",
		Status:       models.StatusActive,
		UploaderUID:  "fixture",
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection(r.Collection).InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test resource: %v", err)
	}
	return r
}

// CreateProfile inserts a profile for uid.
func (f *Fixtures) CreateProfile(ctx context.Context, uid, displayName string) models.Profile {
	f.t.Helper()
	p := models.Profile{
		ID:            primitive.NewObjectID(),
		UID:           uid,
		Email:         uid + "@test.pk",
		DisplayName:   displayName,
		DisplayNameCI: text.Fold(displayName),
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}
