// Package blobstore stores uploaded files (PDFs, profile photos) and hands
// back the public URL they are served from.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Delete when the object does not exist.
var ErrNotFound = errors.New("blob not found")

// Store is a flat namespace of slash-separated object paths.
type Store interface {
	Put(ctx context.Context, objectPath string, r io.Reader, contentType string) error
	Delete(ctx context.Context, objectPath string) error
	URL(objectPath string) string
}

// Info describes a stored upload.
type Info struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	FileName    string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// Upload writes r under prefix/YYYY/MM/<8 hex>-<clean name> so names from
// different users never collide.
func Upload(ctx context.Context, s Store, prefix, filename string, r io.Reader, size int64, contentType string, now time.Time) (Info, error) {
	now = now.UTC()
	p := path.Join(
		strings.Trim(prefix, "/"),
		fmt.Sprintf("%04d/%02d", now.Year(), now.Month()),
		uuid.New().String()[:8]+"-"+SanitizeFilename(filename),
	)
	if err := s.Put(ctx, p, r, contentType); err != nil {
		return Info{}, fmt.Errorf("store %s: %w", p, err)
	}
	return Info{
		Path:        p,
		URL:         s.URL(p),
		FileName:    filename,
		Size:        size,
		ContentType: contentType,
	}, nil
}

const maxNameLen = 100

// SanitizeFilename keeps the base name and replaces every byte outside
// [A-Za-z0-9._-] with '_'. Long names are cut to 100 bytes, keeping a short
// extension.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	b := []byte(name)
	for i, c := range b {
		if !allowed(c) {
			b[i] = '_'
		}
	}
	out := strings.Trim(string(b), ".")
	if out == "" {
		return "file"
	}
	if len(out) > maxNameLen {
		ext := path.Ext(out)
		if ext != "" && len(ext) < 10 {
			out = out[:maxNameLen-len(ext)] + ext
		} else {
			out = out[:maxNameLen]
		}
	}
	return out
}

func allowed(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.'
}
