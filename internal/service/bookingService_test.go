package service

import (
	"context"
	"testing"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFixture() (BookingService, *memory.Store) {
	store := memory.NewSeededStore()
	return NewBookingService(store.Bookings, store.Services, store.Users), store
}

// TestCreateBookingSnapshotsPrice: цена в бронировании — снимок на
// момент создания, последующие изменения услуги его не трогают
func TestCreateBookingSnapshotsPrice(t *testing.T) {
	svc, store := newBookingFixture()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "user1", &CreateBookingRequest{
		ServiceID:   "1",
		BookingDate: "2025-01-10",
		BookingTime: "09:00",
		Address:     "123 Main St, City",
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, booking.TotalPrice)
	assert.Equal(t, "House Cleaning", booking.ServiceTitle)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "John Doe", booking.CustomerName)
	assert.Equal(t, "user@example.com", booking.CustomerEmail)

	newPrice := 2000
	_, err = store.Services.Update(ctx, "1", &entity.ServicePatch{Price: &newPrice})
	require.NoError(t, err)

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500, got.TotalPrice)
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	svc, _ := newBookingFixture()

	_, err := svc.CreateBooking(context.Background(), "user1", &CreateBookingRequest{
		ServiceID:   "missing",
		BookingDate: "2025-01-10",
		BookingTime: "09:00",
		Address:     "123 Main St, City",
	})
	assert.ErrorIs(t, err, entity.ErrServiceNotFound)
}

// Отсутствующий пользователь не блокирует создание, в снимок попадают
// плейсхолдеры
func TestCreateBookingUnknownUserPlaceholders(t *testing.T) {
	svc, _ := newBookingFixture()

	booking, err := svc.CreateBooking(context.Background(), "ghost", &CreateBookingRequest{
		ServiceID:   "2",
		BookingDate: "2025-01-11",
		BookingTime: "14:00",
		Address:     "500 Nowhere Ln",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", booking.CustomerName)
	assert.Equal(t, "unknown@example.com", booking.CustomerEmail)
	assert.Equal(t, "ghost", booking.UserID)
}

// Бронирование переживает удаление услуги, на которую ссылается
func TestBookingSurvivesServiceDeletion(t *testing.T) {
	svc, store := newBookingFixture()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "user1", &CreateBookingRequest{
		ServiceID:   "3",
		BookingDate: "2025-02-01",
		BookingTime: "11:00",
		Address:     "123 Main St, City",
	})
	require.NoError(t, err)

	require.NoError(t, store.Services.Delete(ctx, "3"))

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electrical Installation", got.ServiceTitle)
	assert.Equal(t, 2500, got.TotalPrice)
}

func TestUpdateBookingValidation(t *testing.T) {
	svc, _ := newBookingFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		patch   *entity.BookingPatch
		wantErr error
	}{
		{
			name:    "empty patch",
			id:      "1",
			patch:   &entity.BookingPatch{},
			wantErr: entity.ErrNoUpdatableFields,
		},
		{
			name:    "invalid status",
			id:      "1",
			patch:   &entity.BookingPatch{Status: statusPtr("unknown")},
			wantErr: entity.ErrInvalidBookingStatus,
		},
		{
			name:    "missing booking",
			id:      "missing",
			patch:   &entity.BookingPatch{Status: statusPtr(entity.BookingStatusConfirmed)},
			wantErr: entity.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateBooking(ctx, tt.id, tt.patch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateBookingStatusTransition(t *testing.T) {
	svc, _ := newBookingFixture()
	ctx := context.Background()

	updated, err := svc.UpdateBooking(ctx, "2", &entity.BookingPatch{
		Status: statusPtr(entity.BookingStatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	// Остальные поля не изменились
	assert.Equal(t, "Plumbing Repair", updated.ServiceTitle)
	assert.Equal(t, 2000, updated.TotalPrice)
}

func statusPtr(s entity.BookingStatus) *entity.BookingStatus { return &s }
