package service

import (
	"context"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/sirupsen/logrus"
)

type userService struct {
	userRepo    memory.UserRepository
	bookingRepo memory.BookingRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo memory.UserRepository, bookingRepo memory.BookingRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

// Register создает новый аккаунт с ролью user
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	user := &entity.User{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.RoleUser,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return user, nil
}

// Authenticate проверяет учетные данные. Пароли хранятся открытым
// текстом только для демо-данных.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, entity.ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, entity.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, patch *entity.UserPatch) (*entity.User, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, entity.ErrNoUpdatableFields
	}
	// Роль меняется только через административный маршрут
	patch.Role = nil
	if patch.IsEmpty() {
		return nil, entity.ErrNoUpdatableFields
	}
	return s.userRepo.Update(ctx, userID, patch)
}

// GetUserStats возвращает сводку по бронированиям пользователя
func (s *userService) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case entity.BookingStatusCompleted:
			stats.Completed++
		case entity.BookingStatusPending:
			stats.Pending++
		}
	}
	return stats, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.GetAll(ctx)
}

// SetRole назначает пользователю роль user или admin
func (s *userService) SetRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, entity.ErrInvalidRole
	}

	user, err := s.userRepo.Update(ctx, userID, &entity.UserPatch{Role: &role})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"role":    role,
	}).Info("User role updated")

	return user, nil
}
