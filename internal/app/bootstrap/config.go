// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for PaperHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, resource_backend, etc.
//   - Environment variables: PAPERHUB_MONGO_URI, PAPERHUB_RESOURCE_BACKEND, etc.
//   - Command-line flags: --mongo_uri, --resource_backend, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "paperhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "resource_backend", Default: BackendMongo, Desc: "Where resources are stored: 'mongo' or 'firestore'"},

	// Firebase
	{Name: "firebase_project_id", Default: "", Desc: "Firebase project ID (enables sign-in)"},
	{Name: "firebase_credentials_file", Default: "", Desc: "Path to the Firebase service account JSON (blank uses default credentials)"},

	// File storage configuration
	{Name: "storage_type", Default: StorageLocal, Desc: "Storage backend: 'local' or 'firebase'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/files", Desc: "URL prefix for serving local files"},
	{Name: "storage_bucket", Default: "", Desc: "Firebase Storage bucket name"},

	// Uploads
	{Name: "max_upload_mb", Default: limits.DefaultMaxUploadMB, Desc: "Largest PDF accepted, in MB"},
	{Name: "upload_rate_per_minute", Default: 10, Desc: "Upload requests allowed per user per minute"},
	{Name: "index_warm_interval", Default: "1h", Desc: "How often to ensure indexes on existing resource collections (0 = startup only)"},

	// Timeouts
	{Name: "timeout_ping", Default: timeouts.DefaultPing.String(), Desc: "Health check ping timeout"},
	{Name: "timeout_short", Default: timeouts.DefaultShort.String(), Desc: "Single-document operation timeout"},
	{Name: "timeout_medium", Default: timeouts.DefaultMedium.String(), Desc: "List and write operation timeout"},
	{Name: "timeout_long", Default: timeouts.DefaultLong.String(), Desc: "Schema and batch operation timeout"},
	{Name: "timeout_upload", Default: timeouts.DefaultUpload.String(), Desc: "File upload timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PAPERHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PAPERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ResourceBackend: strings.ToLower(strings.TrimSpace(appValues.String("resource_backend"))),

		FirebaseProjectID:       appValues.String("firebase_project_id"),
		FirebaseCredentialsFile: appValues.String("firebase_credentials_file"),

		StorageType:      strings.ToLower(strings.TrimSpace(appValues.String("storage_type"))),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),
		StorageBucket:    appValues.String("storage_bucket"),

		MaxUploadMB:         appValues.Int("max_upload_mb"),
		UploadRatePerMinute: appValues.Int("upload_rate_per_minute"),
		IndexWarmInterval:   appValues.Duration("index_warm_interval", time.Hour),

		TimeoutPing:   appValues.Duration("timeout_ping", timeouts.DefaultPing),
		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
		TimeoutUpload: appValues.Duration("timeout_upload", timeouts.DefaultUpload),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateApp(appCfg)
}

func validateApp(appCfg AppConfig) error {
	switch appCfg.ResourceBackend {
	case BackendMongo:
	case BackendFirestore:
		if !appCfg.firebaseEnabled() {
			return fmt.Errorf("resource_backend %q requires firebase_project_id", appCfg.ResourceBackend)
		}
	default:
		return fmt.Errorf("unknown resource_backend %q (want %q or %q)", appCfg.ResourceBackend, BackendMongo, BackendFirestore)
	}

	switch appCfg.StorageType {
	case StorageLocal:
		if appCfg.StorageLocalPath == "" {
			return fmt.Errorf("storage_type %q requires storage_local_path", StorageLocal)
		}
	case StorageFirebase:
		if !appCfg.firebaseEnabled() {
			return fmt.Errorf("storage_type %q requires firebase_project_id", StorageFirebase)
		}
		if appCfg.StorageBucket == "" {
			return fmt.Errorf("storage_type %q requires storage_bucket", StorageFirebase)
		}
	default:
		return fmt.Errorf("unknown storage_type %q (want %q or %q)", appCfg.StorageType, StorageLocal, StorageFirebase)
	}

	if appCfg.MaxUploadMB < 1 {
		return fmt.Errorf("max_upload_mb must be at least 1, got %d", appCfg.MaxUploadMB)
	}
	if appCfg.UploadRatePerMinute < 1 {
		return fmt.Errorf("upload_rate_per_minute must be at least 1, got %d", appCfg.UploadRatePerMinute)
	}
	return nil
}
