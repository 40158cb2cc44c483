// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Resource backends.
const (
	BackendMongo     = "mongo"
	BackendFirestore = "firestore"
)

// File storage backends.
const (
	StorageLocal    = "local"
	StorageFirebase = "firebase"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration (ports, TLS, log level,
// CORS), which lives in CoreConfig.
type AppConfig struct {
	// MongoDB holds profiles and the upload ledger always, and resources
	// when ResourceBackend is "mongo".
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// ResourceBackend selects where resource documents live: "mongo" or "firestore".
	ResourceBackend string

	// Firebase project. Needed for sign-in, and for the firestore backend
	// and firebase storage.
	FirebaseProjectID       string
	FirebaseCredentialsFile string // service account JSON; blank uses application default credentials

	// File storage
	StorageType      string // "local" or "firebase"
	StorageLocalPath string // root directory for local files
	StorageLocalURL  string // URL prefix local files are served under
	StorageBucket    string // Firebase Storage bucket (e.g. paperhub.appspot.com)

	// Uploads
	MaxUploadMB         int
	UploadRatePerMinute int
	IndexWarmInterval   time.Duration // 0 runs the warm-up once at startup

	// Operation timeouts
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
	TimeoutUpload time.Duration
}

// firebaseEnabled reports whether a Firebase app should be created.
func (c AppConfig) firebaseEnabled() bool {
	return c.FirebaseProjectID != ""
}
