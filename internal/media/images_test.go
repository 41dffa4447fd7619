package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

func TestSavePaintingImage(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	key, err := storage.SavePaintingImage(encodePNG(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "paintings"+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(key, ".png"))

	_, err = os.Stat(filepath.Join(storage.Root(), key))
	assert.NoError(t, err)
}

func TestSavePaintingImageFreshKeyPerUpload(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.SavePaintingImage(encodePNG(t))
	require.NoError(t, err)

	second, err := storage.SavePaintingImage(encodePNG(t))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSavePaintingImageDetectsFormat(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil))

	key, err := storage.SavePaintingImage(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpeg"))
}

func TestSavePaintingImageRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir)
	require.NoError(t, err)

	_, err = storage.SavePaintingImage([]byte("not an image at all"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	// Nothing was written
	entries, err := os.ReadDir(filepath.Join(dir, "paintings"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	key, err := storage.SavePaintingImage(encodePNG(t))
	require.NoError(t, err)

	require.NoError(t, storage.Remove(key))

	_, err = os.Stat(filepath.Join(storage.Root(), key))
	assert.True(t, os.IsNotExist(err))

	// Removing a stale or empty key is not an error
	assert.NoError(t, storage.Remove(key))
	assert.NoError(t, storage.Remove(""))
}
