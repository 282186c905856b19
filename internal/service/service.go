package service

import (
	"context"
	"mime/multipart"

	"github.com/Zekken26/quick-serve/internal/entity"
)

// CatalogService определяет интерфейс для операций с каталогом услуг
type CatalogService interface {
	// Основные операции
	GetAllServices(ctx context.Context) ([]*entity.Service, error)
	GetService(ctx context.Context, id string) (*entity.Service, error)
	CreateService(ctx context.Context, req *CreateServiceRequest) (*entity.Service, error)
	UpdateService(ctx context.Context, id string, patch *entity.ServicePatch) (*entity.Service, error)
	DeleteService(ctx context.Context, id string) error

	// Категории
	GetAllCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
}

// BookingService определяет интерфейс для операций с бронированиями
type BookingService interface {
	// Основные операции
	CreateBooking(ctx context.Context, userID string, req *CreateBookingRequest) (*entity.Booking, error)
	GetBooking(ctx context.Context, id string) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch *entity.BookingPatch) (*entity.Booking, error)

	// Административные операции
	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
	GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
}

// UserService defines the interface for account and profile operations
type UserService interface {
	// Основные операции
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, patch *entity.UserPatch) (*entity.User, error)
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)

	// Административные операции
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	SetRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error)
}

// UploadService stores uploaded service images and hands back public URLs
type UploadService interface {
	SaveServiceImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// CreateServiceRequest представляет данные для создания услуги
type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       *int   `json:"price" binding:"required"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

// CreateBookingRequest представляет данные для создания бронирования
type CreateBookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// RegisterRequest представляет данные для регистрации аккаунта
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UserStats представляет сводку по бронированиям пользователя
type UserStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
