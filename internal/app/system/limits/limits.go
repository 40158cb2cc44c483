// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBody caps JSON request bodies (wizard submissions, profile edits).
	MaxJSONBody = 256 << 10 // 256 KB

	// DefaultMaxUploadMB is the PDF size cap when max_upload_mb is unset.
	DefaultMaxUploadMB = 25

	// MaxPhotoSize caps profile photo uploads.
	MaxPhotoSize = 5 << 20 // 5 MB

	// multipartSlack covers multipart headers and boundaries around the file.
	multipartSlack = 64 << 10
)

// UploadBytes converts a megabyte cap to bytes, falling back to
// DefaultMaxUploadMB when mb < 1.
func UploadBytes(mb int) int64 {
	if mb < 1 {
		mb = DefaultMaxUploadMB
	}
	return int64(mb) << 20
}

// MultipartBody is the request body cap for a multipart upload whose file
// part may be up to fileBytes.
func MultipartBody(fileBytes int64) int64 {
	return fileBytes + multipartSlack
}
