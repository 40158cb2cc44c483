// internal/app/features/profile/photo.go
package profile

import (
	"errors"
	"io"
	"net/http"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	profilestore "github.com/dalemusser/paperhub/internal/app/store/profiles"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
)

var photoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// HandlePhoto handles POST /profile/photo (multipart field "photo").
func (h *Handler) HandlePhoto(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, limits.MultipartBody(limits.MaxPhotoSize))
	f, hdr, err := r.FormFile("photo")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || r.ContentLength > limits.MultipartBody(limits.MaxPhotoSize) {
			uierrors.WriteError(w, http.StatusRequestEntityTooLarge, "Photo is too large. The limit is 5 MB.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "profile: missing photo part", err, "Please choose a photo to upload.")
		return
	}
	defer f.Close()

	if hdr.Size > limits.MaxPhotoSize {
		uierrors.WriteError(w, http.StatusRequestEntityTooLarge, "Photo is too large. The limit is 5 MB.")
		return
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.ErrLog.LogServerError(w, r, "profile: read photo head", err, "")
		return
	}
	ct := http.DetectContentType(head[:n])
	if !photoTypes[ct] {
		uierrors.WriteFields(w, []uierrors.FieldError{{Field: "photo", Message: "Photo must be a JPEG, PNG, WebP, or GIF image"}})
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.ErrLog.LogServerError(w, r, "profile: rewind photo", err, "")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upload(), h.Log, "upload photo")
	defer cancel()

	info, err := blobstore.Upload(ctx, h.Blobs, "profiles/"+u.UID, hdr.Filename, f, hdr.Size, ct, h.now())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile: store photo", err, "We couldn't save your photo. Please try again.")
		return
	}

	p, err := h.Profiles.SetPhoto(ctx, u.UID, info.URL)
	if errors.Is(err, profilestore.ErrNotFound) {
		_ = h.Blobs.Delete(ctx, info.Path)
		uierrors.RenderNotFound(w, "Please finish registering first.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile: set photo", err, "")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, p)
}
