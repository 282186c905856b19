package service

import (
	"context"
	"strings"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/sirupsen/logrus"
)

type catalogService struct {
	serviceRepo  memory.ServiceRepository
	categoryRepo memory.CategoryRepository
}

// NewCatalogService создает новый экземпляр CatalogService
func NewCatalogService(serviceRepo memory.ServiceRepository, categoryRepo memory.CategoryRepository) CatalogService {
	return &catalogService{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) GetAllServices(ctx context.Context) ([]*entity.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

func (s *catalogService) GetService(ctx context.Context, id string) (*entity.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

// CreateService создает новую услугу в каталоге
func (s *catalogService) CreateService(ctx context.Context, req *CreateServiceRequest) (*entity.Service, error) {
	if strings.TrimSpace(req.Title) == "" || req.Price == nil {
		return nil, entity.ErrInvalidInput
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	svc := &entity.Service{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       *req.Price,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    active,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"service_id": svc.ID,
		"title":      svc.Title,
		"price":      svc.Price,
	}).Info("Service created")

	return svc, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id string, patch *entity.ServicePatch) (*entity.Service, error) {
	return s.serviceRepo.Update(ctx, id, patch)
}

// DeleteService удаляет услугу; повторное удаление не является ошибкой
func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.WithField("service_id", id).Info("Service deleted")
	return nil
}

func (s *catalogService) GetAllCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrInvalidInput
	}
	return s.categoryRepo.Create(ctx, name)
}
