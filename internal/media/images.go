package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage is returned when an upload does not decode as any
// supported raster format.
var ErrInvalidImage = errors.New("payload is not a supported image")

// Storage writes uploaded images under a root directory. Every stored file
// gets a fresh uuid key, so a replaced image never reuses the old name.
type Storage struct {
	root string
}

func NewStorage(root string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Join(root, "paintings"), 0o755); err != nil {
		return nil, err
	}

	return &Storage{root: root}, nil
}

// SavePaintingImage validates and stores an uploaded image, returning its
// key relative to the storage root. The payload is rejected before anything
// touches disk.
func (s *Storage) SavePaintingImage(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))

	if err != nil {
		return "", ErrInvalidImage
	}

	key := filepath.Join("paintings", fmt.Sprintf("%s.%s", uuid.New().String(), format))

	if err := os.WriteFile(filepath.Join(s.root, key), data, 0o644); err != nil {
		return "", err
	}

	return key, nil
}

// Remove deletes a previously stored image by key. A missing file is not an
// error; the reference may already be stale.
func (s *Storage) Remove(key string) error {
	if key == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, key))

	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// Root returns the storage root directory, used to serve files statically.
func (s *Storage) Root() string {
	return s.root
}
