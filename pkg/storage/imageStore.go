package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var imageFormats = map[string]imaging.Format{
	".jpg":  imaging.JPEG,
	".jpeg": imaging.JPEG,
	".png":  imaging.PNG,
	".gif":  imaging.GIF,
}

// IsSupportedImageType reports whether the file extension maps to a
// format the store can encode.
func IsSupportedImageType(ext string) bool {
	_, ok := imageFormats[strings.ToLower(ext)]
	return ok
}

// ImageStore decodes uploaded images, bounds their width and writes the
// re-encoded result to file storage.
type ImageStore struct {
	files    FileStorage
	maxWidth int
}

func NewImageStore(files FileStorage, maxWidth int) *ImageStore {
	return &ImageStore{files: files, maxWidth: maxWidth}
}

// SaveImage decodes data, downscales it when wider than maxWidth and
// stores it under relPath. The target format is taken from the path
// extension.
func (s *ImageStore) SaveImage(relPath string, data io.Reader) error {
	ext := strings.ToLower(filepath.Ext(relPath))
	format, ok := imageFormats[ext]
	if !ok {
		return fmt.Errorf("unsupported image type %q", ext)
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	img = s.bound(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return s.files.Save(relPath, &buf)
}

func (s *ImageStore) bound(img image.Image) image.Image {
	if s.maxWidth > 0 && img.Bounds().Dx() > s.maxWidth {
		return imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
	}
	return img
}
