// Package storage keeps the image files referenced by the catalog. The
// database stores only the path a Library hands back; the files themselves
// live in a flat directory next to the database file.
package storage

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"tourbook/internal/repository/ports"
)

var ErrImageTooLarge = errors.New("image dimensions exceed the configured maximum")

type Library struct {
	dir          string
	maxDimension int
}

// NewLibrary opens (creating if needed) the image directory.
func NewLibrary(dir string, maxDimension int) (*Library, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: empty image directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create image directory: %w", err)
	}
	return &Library{dir: dir, maxDimension: maxDimension}, nil
}

// Import copies the source file into the library under a generated name and
// returns the stored path. Decodable images larger than the maximum
// dimension on either side are rejected; files that are not decodable
// images are copied as-is since the catalog treats paths as opaque.
func (l *Library) Import(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("storage: open source: %w", err)
	}
	defer src.Close()

	if l.maxDimension > 0 {
		if cfg, _, err := image.DecodeConfig(src); err == nil {
			if cfg.Width > l.maxDimension || cfg.Height > l.maxDimension {
				return "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
			}
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("storage: rewind source: %w", err)
		}
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(sourcePath))
	storedPath := filepath.Join(l.dir, name)

	dst, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", storedPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("storage: copy into library: %w", err)
	}
	return storedPath, nil
}

// Remove deletes a stored file. Paths outside the library directory are
// refused so that stale database rows can never point a delete at arbitrary
// files.
func (l *Library) Remove(storedPath string) error {
	rel, err := filepath.Rel(l.dir, storedPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("storage: %s is outside the image directory", storedPath)
	}
	if err := os.Remove(storedPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ ports.ImageLibrary = (*Library)(nil)
