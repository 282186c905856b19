package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/google/uuid"
)

type bookingRepository struct {
	mu    sync.RWMutex
	items []*entity.Booking
}

func NewBookingRepository(seed []*entity.Booking) BookingRepository {
	r := &bookingRepository{}
	for _, b := range seed {
		clone := *b
		r.items = append(r.items, &clone)
	}
	return r
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	clone := *booking
	r.items = append(r.items, &clone)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.items {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, entity.ErrBookingNotFound
}

func (r *bookingRepository) Update(ctx context.Context, id string, patch *entity.BookingPatch) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.items {
		if b.ID == id {
			patch.Apply(b)
			clone := *b
			return &clone, nil
		}
	}
	return nil, entity.ErrBookingNotFound
}

// GetByUserID returns the user's bookings in insertion order.
func (r *bookingRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Booking, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *bookingRepository) GetByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Booking, 0)
	for _, b := range r.items {
		if b.Status == status {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Booking, 0, len(r.items))
	for _, b := range r.items {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}
