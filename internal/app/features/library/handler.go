// internal/app/features/library/handler.go
package library

import (
	"context"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Reader is the read side of a resource backend.
type Reader interface {
	Get(ctx context.Context, coll string, id primitive.ObjectID) (models.Resource, error)
	List(ctx context.Context, coll string, q resourcestore.ListQuery) (resourcestore.Page, error)
}

// Handler serves the public library: resolving a browse selection to its
// collection, listing a collection, and showing one resource.
type Handler struct {
	Resources Reader
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(res Reader, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Resources: res,
		Log:       logger,
		ErrLog:    errLog,
	}
}
