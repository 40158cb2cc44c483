// internal/app/features/upload/handler.go
package upload

import (
	"context"
	"path"
	"strings"
	"time"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ResourceStore is the slice of a resource backend (Mongo or Firestore) the
// upload flow needs.
type ResourceStore interface {
	Create(ctx context.Context, r models.Resource) (models.Resource, error)
	Get(ctx context.Context, coll string, id primitive.ObjectID) (models.Resource, error)
	Delete(ctx context.Context, coll string, id primitive.ObjectID) error
}

// Ledger records who uploaded what.
type Ledger interface {
	Record(ctx context.Context, u models.Upload) (models.Upload, error)
	ListByUser(ctx context.Context, uid string, limit int64) ([]models.Upload, error)
	Get(ctx context.Context, uid, collection, resourceID string) (models.Upload, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByUser(ctx context.Context, uid string) (int64, error)
}

// Handler owns the upload wizard's write endpoints: the PDF upload, the
// final submission, and the caller's own upload history.
type Handler struct {
	Resources ResourceStore
	Ledger    Ledger
	Blobs     blobstore.Store
	MaxFile   int64 // PDF size cap in bytes

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	now func() time.Time
}

// NewHandler constructs an upload Handler. maxFile is the PDF cap in bytes.
func NewHandler(res ResourceStore, ledger Ledger, blobs blobstore.Store, maxFile int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Resources: res,
		Ledger:    ledger,
		Blobs:     blobs,
		MaxFile:   maxFile,
		Log:       logger,
		ErrLog:    errLog,
		now:       time.Now,
	}
}

// filePrefix is where uid's PDFs live; submissions may only reference
// files under it.
func filePrefix(uid string) string {
	return "uploads/" + uid
}

// ownsFile reports whether p is a clean object path under uid's prefix.
// Paths with "." or ".." segments, doubled slashes, or backslashes are
// refused outright rather than resolved.
func ownsFile(uid, p string) bool {
	if uid == "" || strings.ContainsAny(uid, `/\.`) || strings.Contains(p, `\`) {
		return false
	}
	if path.Clean(p) != p || strings.HasPrefix(p, "/") {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." {
			return false
		}
	}
	return strings.HasPrefix(p, filePrefix(uid)+"/")
}
