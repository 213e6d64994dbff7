// Package adapter contains the infrastructure adapters behind the goreg
// domain: filesystem access, the pixel comparison primitive and report
// persistence.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/goreg/internal/model"
)

// ImageFSAdapter abstracts the filesystem operations the domain layer needs
// so the comparison workflow can be tested without touching the disk.
type ImageFSAdapter interface {
	// ListImages returns every supported image under root, relative to root
	// and slash-separated. A missing root yields no images.
	ListImages(root string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to path, creating parent directories.
	WriteFile(path string, content []byte) error

	// CopyFile copies src to dst, creating parent directories of dst.
	CopyFile(src, dst string) error

	// RemoveFile deletes a single file. A missing file is not an error.
	RemoveFile(path string) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
}

// LocalImageFSAdapter implements ImageFSAdapter on the local filesystem.
type LocalImageFSAdapter struct{}

// NewLocalImageFSAdapter constructs a LocalImageFSAdapter.
func NewLocalImageFSAdapter() *LocalImageFSAdapter {
	return &LocalImageFSAdapter{}
}

// ListImages walks root with a "**/*" pattern and keeps supported images.
func (a *LocalImageFSAdapter) ListImages(root string) ([]m.Path, error) {
	var images []m.Path

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return images, nil
	}

	err := doublestar.GlobWalk(os.DirFS(root), "**/*", func(p string, _ fs.DirEntry) error {
		if !IsSupportedImage(p) {
			return nil
		}

		images = append(images, m.Path(path.Clean(p)))

		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list images in %s: %w", m.ErrFileIO, root, err)
	}

	return images, nil
}

// IsSupportedImage reports whether p has one of the supported image
// extensions, compared case-insensitively.
func IsSupportedImage(p string) bool {
	ext := strings.TrimPrefix(path.Ext(filepath.ToSlash(p)), ".")
	if ext == "" {
		return false
	}

	return slices.Contains(m.SupportedExtensions, strings.ToLower(ext))
}

// ReadFile reads the file at path.
func (a *LocalImageFSAdapter) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - paths come from the discovered image set
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrFileIO, err)
	}

	return data, nil
}

// WriteFile writes content to path with 0o644 permissions.
func (a *LocalImageFSAdapter) WriteFile(path string, content []byte) error {
	if err := a.MkdirAll(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // reports and diff images are meant to be readable
		return fmt.Errorf("%w: %w", m.ErrFileIO, err)
	}

	return nil
}

// CopyFile copies a single file.
func (a *LocalImageFSAdapter) CopyFile(src, dst string) error {
	if err := a.copyFile(src, dst); err != nil {
		return fmt.Errorf("%w: failed to copy %s to %s: %w", m.ErrFileIO, src, dst, err)
	}

	return nil
}

func (a *LocalImageFSAdapter) copyFile(src, dst string) error {
	// #nosec G304 - src is a discovered image path
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst mirrors a discovered image path under the expected dir
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	return destFile.Close()
}

// RemoveFile deletes path, ignoring a file that does not exist.
func (a *LocalImageFSAdapter) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", m.ErrFileIO, err)
	}

	return nil
}

// MkdirAll creates path and its parents.
func (a *LocalImageFSAdapter) MkdirAll(path string) error {
	if path == "" || path == "." {
		return nil
	}

	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("%w: %w", m.ErrFileIO, err)
	}

	return nil
}
