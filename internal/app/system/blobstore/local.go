package blobstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Local keeps objects on a filesystem and serves them from baseURL.
type Local struct {
	fs      afero.Fs
	baseURL string
}

// NewLocal stores under root on the OS filesystem.
func NewLocal(root, baseURL string) *Local {
	return NewLocalFs(afero.NewBasePathFs(afero.NewOsFs(), root), baseURL)
}

// NewLocalFs stores on fsys; tests pass afero.NewMemMapFs().
func NewLocalFs(fsys afero.Fs, baseURL string) *Local {
	return &Local{fs: fsys, baseURL: strings.TrimRight(baseURL, "/")}
}

// Fs exposes the backing filesystem for serving files.
func (l *Local) Fs() afero.Fs { return l.fs }

func (l *Local) Put(ctx context.Context, objectPath string, r io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := clean(objectPath)
	if err := l.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := l.fs.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = l.fs.Remove(p)
		return err
	}
	return f.Close()
}

func (l *Local) Delete(_ context.Context, objectPath string) error {
	err := l.fs.Remove(clean(objectPath))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (l *Local) URL(objectPath string) string {
	return l.baseURL + "/" + (&url.URL{Path: clean(objectPath)}).EscapedPath()
}

// clean makes objectPath relative and free of "..".
func clean(objectPath string) string {
	return strings.TrimPrefix(path.Clean("/"+objectPath), "/")
}
