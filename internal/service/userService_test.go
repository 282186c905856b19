package service

import (
	"context"
	"testing"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() UserService {
	store := memory.NewSeededStore()
	return NewUserService(store.Users, store.Bookings)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, []string{"user"}, user.Roles)

	got, err := svc.Authenticate(ctx, "new@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserFixture()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
		Name:     "Impostor",
	})
	assert.ErrorIs(t, err, entity.ErrUserAlreadyExists)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "user@example.com", password: "nope"},
		{name: "unknown email", email: "nobody@example.com", password: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
		})
	}
}

// TestGetUserStats проверяет подсчет сводки по статусам
func TestGetUserStats(t *testing.T) {
	store := memory.NewSeededStore()
	svc := NewUserService(store.Users, store.Bookings)
	ctx := context.Background()

	require.NoError(t, store.Bookings.Create(ctx, &entity.Booking{
		UserID: "user1",
		Status: entity.BookingStatusCompleted,
	}))

	stats, err := svc.GetUserStats(ctx, "user1")
	require.NoError(t, err)
	// Сид: одно confirmed и одно pending
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
}

func TestSetRole(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	user, err := svc.SetRole(ctx, "user1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, []string{"admin"}, user.Roles)

	_, err = svc.SetRole(ctx, "user1", entity.Role("owner"))
	assert.ErrorIs(t, err, entity.ErrInvalidRole)

	_, err = svc.SetRole(ctx, "missing", entity.RoleUser)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

// Роль нельзя сменить через обновление профиля
func TestUpdateProfileIgnoresRole(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	role := entity.RoleAdmin
	_, err := svc.UpdateProfile(ctx, "user1", &entity.UserPatch{Role: &role})
	assert.ErrorIs(t, err, entity.ErrNoUpdatableFields)

	name := "Johnny Doe"
	updated, err := svc.UpdateProfile(ctx, "user1", &entity.UserPatch{Name: &name, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", updated.Name)
	assert.Equal(t, entity.RoleUser, updated.Role)
}
