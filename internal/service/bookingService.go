package service

import (
	"context"
	"errors"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/sirupsen/logrus"
)

// Плейсхолдеры для бронирований, чей пользователь не найден в хранилище
const (
	unknownCustomerName  = "Unknown"
	unknownCustomerEmail = "unknown@example.com"
)

type bookingService struct {
	bookingRepo memory.BookingRepository
	serviceRepo memory.ServiceRepository
	userRepo    memory.UserRepository
}

// NewBookingService создает новый экземпляр BookingService
func NewBookingService(
	bookingRepo memory.BookingRepository,
	serviceRepo memory.ServiceRepository,
	userRepo memory.UserRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking создает новое бронирование со снимком данных услуги и
// пользователя. Снимки не обновляются при последующих изменениях.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *CreateBookingRequest) (*entity.Booking, error) {
	// Валидация услуги
	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// Снимок данных клиента; отсутствующий пользователь не блокирует
	// создание бронирования
	customerName := unknownCustomerName
	customerEmail := unknownCustomerEmail
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		customerName = user.Name
		customerEmail = user.Email
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}

	booking := &entity.Booking{
		UserID:        userID,
		ServiceID:     svc.ID,
		ServiceTitle:  svc.Title,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		Address:       req.Address,
		Status:        entity.BookingStatusPending,
		TotalPrice:    svc.Price,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"service_id": booking.ServiceID,
		"user_id":    booking.UserID,
		"price":      booking.TotalPrice,
	}).Info("Booking created")

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	return s.bookingRepo.GetByUserID(ctx, userID)
}

// UpdateBooking применяет частичное обновление; статус меняется только
// явным запросом, автоматических переходов нет
func (s *bookingService) UpdateBooking(ctx context.Context, id string, patch *entity.BookingPatch) (*entity.Booking, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, entity.ErrNoUpdatableFields
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, entity.ErrInvalidBookingStatus
	}
	return s.bookingRepo.Update(ctx, id, patch)
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

func (s *bookingService) GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	if !status.IsValid() {
		return nil, entity.ErrInvalidBookingStatus
	}
	return s.bookingRepo.GetByStatus(ctx, status)
}
