package profilestore_test

import (
	"errors"
	"testing"

	profilestore "github.com/dalemusser/paperhub/internal/app/store/profiles"
	"github.com/dalemusser/paperhub/internal/app/system/indexes"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/testutil"
	"github.com/dalemusser/waffle/pantry/text"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	store := profilestore.New(db)

	p, err := store.Create(ctx, models.Profile{UID: "u1", DisplayName: "  Hamza Ali ", Email: "h@test.pk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.DisplayName != "Hamza Ali" || p.DisplayNameCI != text.Fold("Hamza Ali") || p.CreatedAt.IsZero() {
		t.Errorf("Create normalized = %+v", p)
	}
	if _, err := store.Create(ctx, models.Profile{UID: "u1"}); !errors.Is(err, profilestore.ErrExists) {
		t.Errorf("second Create: err = %v, want ErrExists", err)
	}

	got, err := store.GetByUID(ctx, "u1")
	if err != nil || got.ID != p.ID {
		t.Fatalf("GetByUID = %+v, %v", got, err)
	}
	if _, err := store.GetByUID(ctx, "missing"); !errors.Is(err, profilestore.ErrNotFound) {
		t.Errorf("GetByUID(missing): err = %v", err)
	}
}

func TestStore_Updates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProfile(ctx, "u1", "Old Name")

	p, err := store.UpdateByUID(ctx, "u1", profilestore.Update{DisplayName: "New Name", City: " Multan ", Bio: "MDCAT 2025"})
	if err != nil {
		t.Fatalf("UpdateByUID: %v", err)
	}
	if p.DisplayName != "New Name" || p.City != "Multan" || p.Bio != "MDCAT 2025" || p.UpdatedAt == nil {
		t.Errorf("UpdateByUID = %+v", p)
	}

	p, err = store.SetPhoto(ctx, "u1", "https://cdn.test/p.jpg")
	if err != nil || p.PhotoURL != "https://cdn.test/p.jpg" {
		t.Errorf("SetPhoto = %+v, %v", p, err)
	}

	if err := store.SyncIdentity(ctx, "u1", "NEW@Test.pk", true); err != nil {
		t.Fatalf("SyncIdentity: %v", err)
	}
	got, _ := store.GetByUID(ctx, "u1")
	if got.Email != "new@test.pk" || !got.EmailVerified {
		t.Errorf("after SyncIdentity = %+v", got)
	}

	if _, err := store.UpdateByUID(ctx, "ghost", profilestore.Update{DisplayName: "x"}); !errors.Is(err, profilestore.ErrNotFound) {
		t.Errorf("UpdateByUID(ghost): err = %v", err)
	}
}
