package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
)

// Firebase keeps objects in a Firebase Storage (Cloud Storage) bucket.
type Firebase struct {
	bucket *gcs.BucketHandle
	name   string
}

// NewFirebase wraps a bucket handle, typically from
// firebaseApp.Storage(ctx) then client.Bucket(name).
func NewFirebase(bucket *gcs.BucketHandle, name string) *Firebase {
	return &Firebase{bucket: bucket, name: name}
}

func (f *Firebase) Put(ctx context.Context, objectPath string, r io.Reader, contentType string) error {
	w := f.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}
	return nil
}

func (f *Firebase) Delete(ctx context.Context, objectPath string) error {
	err := f.bucket.Object(objectPath).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrNotFound
	}
	return err
}

// URL is the Firebase download URL for the object.
func (f *Firebase) URL(objectPath string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		f.name, url.PathEscape(objectPath))
}
