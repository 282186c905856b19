package service

import (
	"context"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/Zekken26/quick-serve/pkg/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type uploadService struct {
	images  *storage.ImageStore
	baseURL string
}

// NewUploadService создает новый экземпляр UploadService
func NewUploadService(images *storage.ImageStore, baseURL string) UploadService {
	return &uploadService{
		images:  images,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SaveServiceImage сохраняет загруженное изображение под уникальным
// именем и возвращает публичный URL
func (s *uploadService) SaveServiceImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	if !storage.IsSupportedImageType(ext) {
		return "", entity.ErrUnsupportedImageType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	relPath := path.Join("services", uuid.NewString()+ext)
	if err := s.images.SaveImage(relPath, src); err != nil {
		return "", err
	}

	url := s.baseURL + "/media/" + relPath
	logrus.WithFields(logrus.Fields{
		"path": relPath,
		"size": file.Size,
	}).Info("Service image stored")

	return url, nil
}
