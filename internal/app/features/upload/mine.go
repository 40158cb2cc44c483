// internal/app/features/upload/mine.go
package upload

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	uploadstore "github.com/dalemusser/paperhub/internal/app/store/uploads"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/app/system/paging"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mineResponse struct {
	Items []models.Upload `json:"items"`
	Total int64           `json:"total"`
}

// ServeMine handles GET /mine: the caller's uploads, newest first.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "list uploads")
	defer cancel()

	items, err := h.Ledger.ListByUser(ctx, u.UID, int64(paging.ParseLimit(r)))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "upload: list ledger", err, "")
		return
	}
	total, err := h.Ledger.CountByUser(ctx, u.UID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "upload: count ledger", err, "")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, mineResponse{Items: items, Total: total})
}

// HandleDelete handles DELETE /{collection}/{id}. Only the uploader may
// delete; the resource, its file, and the ledger row all go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	coll := chi.URLParam(r, "collection")
	idHex := chi.URLParam(r, "id")

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderNotFound(w, "Upload not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete upload")
	defer cancel()

	row, err := h.Ledger.Get(ctx, u.UID, coll, idHex)
	if errors.Is(err, uploadstore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Upload not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "upload: load ledger row", err, "")
		return
	}

	res, err := h.Resources.Get(ctx, coll, id)
	switch {
	case errors.Is(err, resourcestore.ErrNotFound):
		// Resource already gone; drop the dangling ledger row below.
	case err != nil:
		h.ErrLog.LogServerError(w, r, "upload: load resource", err, "")
		return
	default:
		if err := h.Resources.Delete(ctx, coll, id); err != nil && !errors.Is(err, resourcestore.ErrNotFound) {
			h.ErrLog.LogServerError(w, r, "upload: delete resource", err, "")
			return
		}
		switch {
		case res.FilePath == "":
		case !ownsFile(u.UID, res.FilePath):
			h.Log.Warn("upload: file outside uploader prefix left in place",
				zap.String("uid", u.UID),
				zap.String("path", res.FilePath))
		default:
			if err := h.Blobs.Delete(ctx, res.FilePath); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
				h.Log.Warn("upload: delete file",
					zap.String("path", res.FilePath),
					zap.Error(err))
			}
		}
	}

	if err := h.Ledger.Delete(ctx, row.ID); err != nil && !errors.Is(err, uploadstore.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "upload: delete ledger row", err, "")
		return
	}

	h.Log.Info("upload deleted",
		zap.String("uid", u.UID),
		zap.String("collection", coll),
		zap.String("resource_id", idHex))
	w.WriteHeader(http.StatusNoContent)
}
