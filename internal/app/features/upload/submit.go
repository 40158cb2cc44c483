// internal/app/features/upload/submit.go
package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/domain/wizard"
	"go.uber.org/zap"
)

type createResponse struct {
	ID         string `json:"id"`
	Collection string `json:"collection"`
	Slug       string `json:"slug"`
}

// HandleCreate handles POST / with the finished wizard selection.
//
// The selection is validated, resolved to its collection, turned into a
// document, and written to the configured resource store. A ledger row is
// then recorded for "My uploads"; a ledger failure is logged but does not
// undo the resource.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var sel wizard.Selection
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		h.ErrLog.LogBadRequest(w, r, "upload: bad selection body", err, "Invalid request body.")
		return
	}
	sel = sel.WithDescription(htmlsanitize.Sanitize(sel.Description))

	if errs := wizard.Validate(sel); len(errs) > 0 {
		uierrors.WriteFields(w, toFieldErrors(errs))
		return
	}
	if sel.File != nil && !ownsFile(u.UID, sel.File.Path) {
		uierrors.WriteFields(w, []uierrors.FieldError{{Field: "file", Message: "Please upload the PDF again"}})
		return
	}

	doc := wizard.BuildDocument(sel, wizard.Uploader{UID: u.UID, Name: displayName(u)}, h.now())
	if doc.URL == "" && doc.FilePath != "" {
		doc.URL = h.Blobs.URL(doc.FilePath)
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create resource")
	defer cancel()

	saved, err := h.Resources.Create(ctx, doc)
	switch {
	case errors.Is(err, resourcestore.ErrDuplicate):
		uierrors.WriteError(w, http.StatusConflict, "This resource has already been uploaded.")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "upload: create resource", err, "We couldn't save your upload. Please try again.")
		return
	}

	if _, err := h.Ledger.Record(ctx, models.Upload{
		UID:         u.UID,
		Collection:  saved.Collection,
		ResourceID:  saved.ID.Hex(),
		Title:       saved.Title,
		ContentType: saved.ContentType,
		CreatedAt:   saved.CreatedAt,
	}); err != nil {
		h.Log.Error("upload: record ledger row",
			zap.String("uid", u.UID),
			zap.String("collection", saved.Collection),
			zap.String("resource_id", saved.ID.Hex()),
			zap.Error(err))
	}

	h.Log.Info("resource uploaded",
		zap.String("uid", u.UID),
		zap.String("collection", saved.Collection),
		zap.String("resource_id", saved.ID.Hex()))

	uierrors.WriteJSON(w, http.StatusCreated, createResponse{
		ID:         saved.ID.Hex(),
		Collection: saved.Collection,
		Slug:       saved.Slug,
	})
}

func toFieldErrors(errs []wizard.FieldError) []uierrors.FieldError {
	out := make([]uierrors.FieldError, len(errs))
	for i, e := range errs {
		out[i] = uierrors.FieldError{Field: e.Field, Message: e.Message}
	}
	return out
}

func displayName(u *auth.User) string {
	if u.Name != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
