// internal/app/bootstrap/backends.go
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	fsresources "github.com/dalemusser/paperhub/internal/app/store/fsresources"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// resourceBackend is what both resource stores provide and the upload and
// library features consume.
type resourceBackend interface {
	Create(ctx context.Context, r models.Resource) (models.Resource, error)
	Get(ctx context.Context, coll string, id primitive.ObjectID) (models.Resource, error)
	Delete(ctx context.Context, coll string, id primitive.ObjectID) error
	List(ctx context.Context, coll string, q resourcestore.ListQuery) (resourcestore.Page, error)
}

func newResourceBackend(appCfg AppConfig, deps DBDeps, logger *zap.Logger) (resourceBackend, error) {
	switch appCfg.ResourceBackend {
	case BackendFirestore:
		if deps.Firestore == nil {
			return nil, fmt.Errorf("resource_backend %q but no Firestore client", BackendFirestore)
		}
		return fsresources.New(deps.Firestore, logger), nil
	default:
		return resourcestore.New(deps.MongoDatabase), nil
	}
}

func newBlobStore(appCfg AppConfig, deps DBDeps) (blobstore.Store, error) {
	switch appCfg.StorageType {
	case StorageFirebase:
		if deps.Bucket == nil {
			return nil, fmt.Errorf("storage_type %q but no bucket handle", StorageFirebase)
		}
		return blobstore.NewFirebase(deps.Bucket, appCfg.StorageBucket), nil
	default:
		return blobstore.NewLocal(appCfg.StorageLocalPath, strings.TrimRight(appCfg.StorageLocalURL, "/")), nil
	}
}

// tokenVerifier returns nil (no sign-in) when Firebase Auth is not
// configured. The explicit nil keeps a nil *fbauth.Client out of the
// interface.
func tokenVerifier(c *fbauth.Client) auth.TokenVerifier {
	if c == nil {
		return nil
	}
	return c
}
