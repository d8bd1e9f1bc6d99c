package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore keeps equipment images on the local filesystem, keyed by an
// opaque uuid-based name. The Equipment.ImageKey field references entries in
// this store.
type ImageStore struct {
	baseURL   string
	imagesDir string
}

func NewImageStore(baseURL, uploadDir string) (*ImageStore, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &ImageStore{
		baseURL:   baseURL,
		imagesDir: imagesDir,
	}, nil
}

// NewKey mints a storage key for an upload, preserving the file extension so
// downloads can infer a content type.
func (s *ImageStore) NewKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// URL returns the public download URL for a key.
func (s *ImageStore) URL(key string) string {
	return fmt.Sprintf("%s/api/v1/images/%s", s.baseURL, key)
}

// Save writes an uploaded image under key. Keys are flat uuid names; a key
// containing a path separator is rejected.
func (s *ImageStore) Save(key string, reader io.Reader) error {
	if strings.ContainsAny(key, "/\\") || key == "" {
		return fmt.Errorf("invalid image key: %q", key)
	}
	file, err := os.Create(filepath.Join(s.imagesDir, key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Open returns a reader for the stored image.
func (s *ImageStore) Open(key string) (io.ReadCloser, error) {
	if strings.ContainsAny(key, "/\\") || key == "" {
		return nil, fmt.Errorf("invalid image key: %q", key)
	}
	file, err := os.Open(filepath.Join(s.imagesDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored image. A missing file is not an error.
func (s *ImageStore) Delete(key string) error {
	if strings.ContainsAny(key, "/\\") || key == "" {
		return fmt.Errorf("invalid image key: %q", key)
	}
	err := os.Remove(filepath.Join(s.imagesDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
