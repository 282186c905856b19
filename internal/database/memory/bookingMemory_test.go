package memory

import (
	"context"
	"testing"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookingsByUserInsertionOrder проверяет, что выборка по
// пользователю возвращает только его бронирования в порядке вставки
func TestBookingsByUserInsertionOrder(t *testing.T) {
	repo := NewBookingRepository(nil)
	ctx := context.Background()

	rows := []*entity.Booking{
		{UserID: "user1", ServiceID: "1", Status: entity.BookingStatusPending},
		{UserID: "user2", ServiceID: "2", Status: entity.BookingStatusPending},
		{UserID: "user1", ServiceID: "3", Status: entity.BookingStatusConfirmed},
		{UserID: "user1", ServiceID: "2", Status: entity.BookingStatusCancelled},
	}
	for _, b := range rows {
		require.NoError(t, repo.Create(ctx, b))
	}

	got, err := repo.GetByUserID(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ServiceID)
	assert.Equal(t, "3", got[1].ServiceID)
	assert.Equal(t, "2", got[2].ServiceID)

	other, err := repo.GetByUserID(ctx, "user2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "2", other[0].ServiceID)

	none, err := repo.GetByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingUpdateMergesFields(t *testing.T) {
	repo := NewBookingRepository(nil)
	ctx := context.Background()

	booking := &entity.Booking{
		UserID:      "user1",
		ServiceID:   "1",
		BookingDate: "2024-12-01",
		BookingTime: "10:00",
		Status:      entity.BookingStatusPending,
		TotalPrice:  1500,
	}
	require.NoError(t, repo.Create(ctx, booking))

	status := entity.BookingStatusConfirmed
	updated, err := repo.Update(ctx, booking.ID, &entity.BookingPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "2024-12-01", updated.BookingDate)
	assert.Equal(t, 1500, updated.TotalPrice)
}

func TestBookingUpdateNotFound(t *testing.T) {
	repo := NewBookingRepository(nil)

	status := entity.BookingStatusConfirmed
	_, err := repo.Update(context.Background(), "missing", &entity.BookingPatch{Status: &status})
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}

func TestBookingGetByStatus(t *testing.T) {
	repo := NewBookingRepository(SeedBookings())
	ctx := context.Background()

	pending, err := repo.GetByStatus(ctx, entity.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].ID)

	cancelled, err := repo.GetByStatus(ctx, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
