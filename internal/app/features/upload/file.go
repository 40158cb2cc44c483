// internal/app/features/upload/file.go
package upload

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/blobstore"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const pdfType = "application/pdf"

// HandleFile handles POST /file (multipart field "file").
//
// Only PDFs are accepted, checked by extension and by content sniffing. The
// response carries the blob path the wizard submits back as selection.file.
func (h *Handler) HandleFile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, limits.MultipartBody(h.MaxFile))
	f, hdr, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || r.ContentLength > limits.MultipartBody(h.MaxFile) {
			uierrors.WriteError(w, http.StatusRequestEntityTooLarge, sizeMessage(h.MaxFile))
			return
		}
		h.ErrLog.LogBadRequest(w, r, "upload: missing file part", err, "Please choose a PDF to upload.")
		return
	}
	defer f.Close()

	if hdr.Size > h.MaxFile {
		uierrors.WriteError(w, http.StatusRequestEntityTooLarge, sizeMessage(h.MaxFile))
		return
	}
	if !strings.EqualFold(path.Ext(hdr.Filename), ".pdf") {
		uierrors.WriteFields(w, []uierrors.FieldError{{Field: "file", Message: "Only PDF files can be uploaded"}})
		return
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.ErrLog.LogServerError(w, r, "upload: read file head", err, "")
		return
	}
	if http.DetectContentType(head[:n]) != pdfType {
		uierrors.WriteFields(w, []uierrors.FieldError{{Field: "file", Message: "Only PDF files can be uploaded"}})
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.ErrLog.LogServerError(w, r, "upload: rewind file", err, "")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upload(), h.Log, "upload file")
	defer cancel()

	info, err := blobstore.Upload(ctx, h.Blobs, filePrefix(u.UID), hdr.Filename, f, hdr.Size, pdfType, h.now())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "upload: store file", err, "We couldn't save your file. Please try again.")
		return
	}

	h.Log.Info("file uploaded",
		zap.String("uid", u.UID),
		zap.String("path", info.Path),
		zap.Int64("size", info.Size))

	uierrors.WriteJSON(w, http.StatusCreated, info)
}

func sizeMessage(max int64) string {
	return "File is too large. The limit is " + mb(max) + " MB."
}

func mb(b int64) string {
	n := b >> 20
	if n < 1 {
		n = 1
	}
	return strconv.FormatInt(n, 10)
}
