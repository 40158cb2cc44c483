package workers_test

import (
	"testing"

	"github.com/dalemusser/paperhub/internal/app/system/workers"
	"github.com/dalemusser/paperhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestWarmOnce_OnlyTaxonomyCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"Punjab9thPastPapers", "OLevelNotes", "scratch"} {
		if _, err := db.Collection(name).InsertOne(ctx, bson.M{"title": "x"}); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	n, err := workers.WarmOnce(ctx, db)
	if err != nil {
		t.Fatalf("WarmOnce: %v", err)
	}
	if n != 2 {
		t.Errorf("visited %d collections, want 2", n)
	}

	specs, err := db.Collection("scratch").Indexes().ListSpecifications(ctx)
	if err != nil {
		t.Fatalf("list scratch indexes: %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("scratch has %d indexes, want only _id", len(specs))
	}

	specs, err = db.Collection("OLevelNotes").Indexes().ListSpecifications(ctx)
	if err != nil {
		t.Fatalf("list OLevelNotes indexes: %v", err)
	}
	if len(specs) < 2 {
		t.Errorf("OLevelNotes has %d indexes, want resource indexes", len(specs))
	}
}

func TestIndexWarmer_StartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	w := workers.NewIndexWarmer(db, zap.NewNop(), 0)
	w.Start()
	w.Stop()
}
