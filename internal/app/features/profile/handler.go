// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"time"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	profilestore "github.com/dalemusser/paperhub/internal/app/store/profiles"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"go.uber.org/zap"
)

// Profiles is the profile store as the handlers use it.
type Profiles interface {
	Create(ctx context.Context, p models.Profile) (models.Profile, error)
	GetByUID(ctx context.Context, uid string) (models.Profile, error)
	UpdateByUID(ctx context.Context, uid string, u profilestore.Update) (models.Profile, error)
	SetPhoto(ctx context.Context, uid, url string) (models.Profile, error)
	SyncIdentity(ctx context.Context, uid, email string, verified bool) error
}

// Handler owns all user profile handlers.
type Handler struct {
	Profiles Profiles
	Blobs    blobstore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger

	now func() time.Time
}

// NewHandler constructs a Handler bound to the profile store and photo storage.
func NewHandler(profiles Profiles, blobs blobstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profiles,
		Blobs:    blobs,
		Log:      logger,
		ErrLog:   errLog,
		now:      time.Now,
	}
}
