package uploadstore_test

import (
	"errors"
	"testing"
	"time"

	uploadstore "github.com/dalemusser/paperhub/internal/app/store/uploads"
	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/testutil"
)

func TestStore_RecordAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := uploadstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		_, err := store.Record(ctx, models.Upload{
			UID:        "u1",
			Collection: "OLevelNotes",
			ResourceID: title,
			Title:      title,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Record %s: %v", title, err)
		}
	}
	if _, err := store.Record(ctx, models.Upload{UID: "u2", Collection: "OLevelNotes", ResourceID: "other"}); err != nil {
		t.Fatalf("Record other user: %v", err)
	}

	got, err := store.ListByUser(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 || got[0].Title != "new" || got[1].Title != "mid" {
		t.Errorf("ListByUser = %+v", got)
	}

	n, err := store.CountByUser(ctx, "u1")
	if err != nil || n != 3 {
		t.Errorf("CountByUser = %d, %v", n, err)
	}

	none, err := store.ListByUser(ctx, "nobody", 10)
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("ListByUser(nobody) = %#v, %v", none, err)
	}
}

func TestStore_GetDeleteDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	store := uploadstore.New(db)

	u, err := store.Record(ctx, models.Upload{UID: "u1", Collection: "CSSNotes", ResourceID: "abc"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := store.Record(ctx, models.Upload{UID: "u1", Collection: "CSSNotes", ResourceID: "abc"}); !errors.Is(err, uploadstore.ErrDuplicate) {
		t.Errorf("duplicate Record: err = %v", err)
	}

	if _, err := store.Get(ctx, "u2", "CSSNotes", "abc"); !errors.Is(err, uploadstore.ErrNotFound) {
		t.Errorf("Get by other user: err = %v", err)
	}
	got, err := store.Get(ctx, "u1", "CSSNotes", "abc")
	if err != nil || got.ID != u.ID {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if err := store.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, u.ID); !errors.Is(err, uploadstore.ErrNotFound) {
		t.Errorf("second Delete: err = %v", err)
	}
}
