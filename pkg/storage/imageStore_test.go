package storage

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int, format imaging.Format) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return &buf
}

func TestSaveImageKeepsSmallImage(t *testing.T) {
	dir := t.TempDir()
	files := NewFileStorage(dir)
	store := NewImageStore(files, 1600)

	data := encodeTestImage(t, 200, 100, imaging.PNG)
	require.NoError(t, store.SaveImage("services/small.png", data))
	require.True(t, files.Exists("services/small.png"))

	saved, err := imaging.Open(filepath.Join(dir, "services/small.png"))
	require.NoError(t, err)
	assert.Equal(t, 200, saved.Bounds().Dx())
	assert.Equal(t, 100, saved.Bounds().Dy())
}

// Широкие изображения ужимаются до maxWidth с сохранением пропорций
func TestSaveImageBoundsWidth(t *testing.T) {
	dir := t.TempDir()
	files := NewFileStorage(dir)
	store := NewImageStore(files, 100)

	data := encodeTestImage(t, 400, 200, imaging.JPEG)
	require.NoError(t, store.SaveImage("services/wide.jpg", data))

	saved, err := imaging.Open(filepath.Join(dir, "services/wide.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 100, saved.Bounds().Dx())
	assert.Equal(t, 50, saved.Bounds().Dy())
}

func TestSaveImageRejectsUnsupportedExtension(t *testing.T) {
	store := NewImageStore(NewFileStorage(t.TempDir()), 1600)

	data := encodeTestImage(t, 10, 10, imaging.PNG)
	err := store.SaveImage("services/file.bmp", data)
	assert.ErrorContains(t, err, "unsupported image type")
}

func TestSaveImageRejectsGarbage(t *testing.T) {
	store := NewImageStore(NewFileStorage(t.TempDir()), 1600)

	err := store.SaveImage("services/broken.png", bytes.NewReader([]byte("not an image")))
	assert.ErrorContains(t, err, "decode image")
}

func TestIsSupportedImageType(t *testing.T) {
	assert.True(t, IsSupportedImageType(".jpg"))
	assert.True(t, IsSupportedImageType(".PNG"))
	assert.False(t, IsSupportedImageType(".bmp"))
	assert.False(t, IsSupportedImageType(""))
}
