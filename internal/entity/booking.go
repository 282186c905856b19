package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking references a service and a user. ServiceTitle, TotalPrice,
// CustomerName and CustomerEmail are snapshots taken at creation time;
// they are never re-synced when the service or user changes later.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ServiceID     string        `json:"service_id"`
	ServiceTitle  string        `json:"service_title"`
	BookingDate   string        `json:"booking_date"` // YYYY-MM-DD
	BookingTime   string        `json:"booking_time"` // HH:MM
	Address       string        `json:"address"`
	Status        BookingStatus `json:"status"`
	TotalPrice    int           `json:"total_price"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BookingPatch carries a partial update for a booking.
type BookingPatch struct {
	BookingDate *string        `json:"booking_date"`
	BookingTime *string        `json:"booking_time"`
	Address     *string        `json:"address"`
	Status      *BookingStatus `json:"status"`
	TotalPrice  *int           `json:"total_price"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p *BookingPatch) IsEmpty() bool {
	return p.BookingDate == nil && p.BookingTime == nil && p.Address == nil &&
		p.Status == nil && p.TotalPrice == nil
}

// Apply merges the patch into b, field by field.
func (p *BookingPatch) Apply(b *Booking) {
	if p.BookingDate != nil {
		b.BookingDate = *p.BookingDate
	}
	if p.BookingTime != nil {
		b.BookingTime = *p.BookingTime
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
}
