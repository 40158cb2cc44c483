package resourcestore_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/paperhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var punjab9thNotes = taxonomy.Key{
	MainCategory: taxonomy.CategorySchool,
	Province:     "Punjab",
	ClassLevel:   "9th",
	ContentType:  taxonomy.ContentNotes,
}

func TestPrepare(t *testing.T) {
	now := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)

	if _, err := resourcestore.Prepare(models.Resource{Title: "x"}, now); !errors.Is(err, resourcestore.ErrNoCollection) {
		t.Errorf("missing collection: err = %v", err)
	}
	if _, err := resourcestore.Prepare(models.Resource{Collection: "c", Title: " "}, now); !errors.Is(err, resourcestore.ErrNoTitle) {
		t.Errorf("blank title: err = %v", err)
	}

	r, err := resourcestore.Prepare(models.Resource{Collection: "OLevelNotes", Title: "Mechanics", Subject: "Physics"}, now)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if r.ID.IsZero() || r.TitleCI == "" || r.SubjectCI == "" {
		t.Errorf("derived fields not set: %+v", r)
	}
	if r.Status != models.StatusActive || !r.CreatedAt.Equal(now) || r.UpdatedAt == nil {
		t.Errorf("defaults not set: %+v", r)
	}
}

func TestStore_CreateGetDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Resource{
		Collection:   "Punjab9thNotes",
		ResourceType: taxonomy.ResourcePDF,
		MainCategory: taxonomy.CategorySchool,
		ContentType:  taxonomy.ContentNotes,
		Title:        "Kinematics",
		Subject:      "Physics",
		URL:          "https://files.test/k.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Fatal("expected ID to be assigned")
	}

	got, err := store.Get(ctx, "Punjab9thNotes", created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Kinematics" || got.Collection != "Punjab9thNotes" {
		t.Errorf("Get = %+v", got)
	}

	if _, err := store.Get(ctx, "Sindh9thNotes", created.ID); !errors.Is(err, resourcestore.ErrNotFound) {
		t.Errorf("Get from another collection: err = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, "Punjab9thNotes", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "Punjab9thNotes", created.ID); !errors.Is(err, resourcestore.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestStore_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := models.Resource{ID: primitive.NewObjectID(), Collection: "OLevelNotes", Title: "Atoms"}
	if _, err := store.Create(ctx, r); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := store.Create(ctx, r); !errors.Is(err, resourcestore.ErrDuplicate) {
		t.Errorf("second Create: err = %v, want ErrDuplicate", err)
	}
}

func TestStore_List_FiltersAndSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateResource(ctx, punjab9thNotes, "Motion", "Physics")
	fx.CreateResource(ctx, punjab9thNotes, "Moles", "Chemistry")
	fx.CreateResource(ctx, punjab9thNotes, "Matrices", "Mathematics")
	hidden := fx.CreateResource(ctx, punjab9thNotes, "Momentum", "Physics")
	if _, err := db.Collection("Punjab9thNotes").UpdateByID(ctx, hidden.ID,
		map[string]any{"$set": map[string]any{"status": models.StatusDisabled}}); err != nil {
		t.Fatalf("disable: %v", err)
	}

	page, err := store.List(ctx, "Punjab9thNotes", resourcestore.ListQuery{Search: "mo"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].Title != "Moles" || page.Items[1].Title != "Motion" {
		t.Errorf("search items = %+v", titles(page.Items))
	}

	page, err = store.List(ctx, "Punjab9thNotes", resourcestore.ListQuery{Subject: "PHYSICS"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "Motion" {
		t.Errorf("subject items = %v", titles(page.Items))
	}

	page, err = store.List(ctx, "EmptyCollection", resourcestore.ListQuery{})
	if err != nil {
		t.Fatalf("List empty failed: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 || page.HasNext || page.HasPrev {
		t.Errorf("empty page = %+v", page)
	}
}

func TestStore_List_Paging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 5; i++ {
		fx.CreateResource(ctx, punjab9thNotes, fmt.Sprintf("Chapter %d", i+1), "Physics")
	}

	first, err := store.List(ctx, "Punjab9thNotes", resourcestore.ListQuery{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := titles(first.Items); fmt.Sprint(got) != "[Chapter 1 Chapter 2]" || !first.HasNext || first.HasPrev {
		t.Fatalf("first page = %v next=%v prev=%v", got, first.HasNext, first.HasPrev)
	}

	second, err := store.List(ctx, "Punjab9thNotes", resourcestore.ListQuery{Limit: 2, After: first.Next})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := titles(second.Items); fmt.Sprint(got) != "[Chapter 3 Chapter 4]" || !second.HasPrev || !second.HasNext {
		t.Fatalf("second page = %v", got)
	}

	back, err := store.List(ctx, "Punjab9thNotes", resourcestore.ListQuery{Limit: 2, Before: second.Prev})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := titles(back.Items); fmt.Sprint(got) != "[Chapter 1 Chapter 2]" {
		t.Errorf("back page = %v", got)
	}
}

func titles(rs []models.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}
