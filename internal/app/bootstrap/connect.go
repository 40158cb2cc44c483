// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ConnectDB connects MongoDB and, when a Firebase project is configured,
// the Firebase app with the clients the selected backends need.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return deps, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return deps, fmt.Errorf("ping mongo: %w", err)
	}
	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	if !appCfg.firebaseEnabled() {
		logger.Warn("firebase_project_id not set; sign-in is disabled and protected routes will answer 401")
		return deps, nil
	}
	if err := connectFirebase(ctx, appCfg, &deps, logger); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}
	return deps, nil
}

func connectFirebase(ctx context.Context, appCfg AppConfig, deps *DBDeps, logger *zap.Logger) error {
	var opts []option.ClientOption
	if appCfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(appCfg.FirebaseCredentialsFile))
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     appCfg.FirebaseProjectID,
		StorageBucket: appCfg.StorageBucket,
	}, opts...)
	if err != nil {
		return fmt.Errorf("init firebase app: %w", err)
	}
	deps.Firebase = fbApp

	if deps.Auth, err = fbApp.Auth(ctx); err != nil {
		return fmt.Errorf("init firebase auth: %w", err)
	}

	if appCfg.ResourceBackend == BackendFirestore {
		if deps.Firestore, err = fbApp.Firestore(ctx); err != nil {
			return fmt.Errorf("init firestore: %w", err)
		}
	}

	if appCfg.StorageType == StorageFirebase {
		sc, err := fbApp.Storage(ctx)
		if err != nil {
			return fmt.Errorf("init firebase storage: %w", err)
		}
		if deps.Bucket, err = sc.Bucket(appCfg.StorageBucket); err != nil {
			return fmt.Errorf("open bucket %s: %w", appCfg.StorageBucket, err)
		}
	}

	logger.Info("connected to Firebase",
		zap.String("project", appCfg.FirebaseProjectID),
		zap.Bool("firestore", deps.Firestore != nil),
		zap.Bool("storage", deps.Bucket != nil))
	return nil
}
