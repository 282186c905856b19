package memory

import (
	"context"

	"github.com/Zekken26/quick-serve/internal/entity"
)

type ServiceRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	GetAll(ctx context.Context) ([]*entity.Service, error)
	Update(ctx context.Context, id string, patch *entity.ServicePatch) (*entity.Service, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, id string, patch *entity.BookingPatch) (*entity.Booking, error)

	// Query operations
	GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
	GetByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
	GetAll(ctx context.Context) ([]*entity.Booking, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	GetAll(ctx context.Context) ([]*entity.Category, error)
}

// Store owns the in-memory collections and is passed explicitly to the
// service layer. There is no persistence behind it: the collections live
// for the lifetime of the process.
type Store struct {
	Services   ServiceRepository
	Bookings   BookingRepository
	Users      UserRepository
	Categories CategoryRepository
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		Services:   NewServiceRepository(nil),
		Bookings:   NewBookingRepository(nil),
		Users:      NewUserRepository(nil),
		Categories: NewCategoryRepository(nil),
	}
}

// NewSeededStore builds a store preloaded with the sample catalog,
// accounts and bookings.
func NewSeededStore() *Store {
	return &Store{
		Services:   NewServiceRepository(SeedServices()),
		Bookings:   NewBookingRepository(SeedBookings()),
		Users:      NewUserRepository(SeedUsers()),
		Categories: NewCategoryRepository(SeedCategories()),
	}
}
