// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The Firebase fields are nil unless firebase_project_id is set; Firestore
// and Bucket are additionally nil unless their backend is selected.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Firebase  *firebase.App
	Auth      *fbauth.Client
	Firestore *firestore.Client
	Bucket    *gcs.BucketHandle
}
