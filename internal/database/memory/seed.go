package memory

import (
	"time"

	"github.com/Zekken26/quick-serve/internal/entity"
)

var seedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SeedUsers returns the demo accounts: one regular user and one admin.
func SeedUsers() []*entity.User {
	return []*entity.User{
		{
			ID:        "user1",
			Email:     "user@example.com",
			Password:  "password",
			Role:      entity.RoleUser,
			Roles:     []string{"user"},
			Name:      "John Doe",
			Phone:     "+1234567890",
			Address:   "123 Main St, City",
			CreatedAt: seedTime,
		},
		{
			ID:        "admin1",
			Email:     "admin@example.com",
			Password:  "adminpass",
			Role:      entity.RoleAdmin,
			Roles:     []string{"admin"},
			Name:      "Admin User",
			Phone:     "+0987654321",
			Address:   "456 Admin Ave, City",
			CreatedAt: seedTime,
		},
	}
}

// SeedServices returns the sample catalog.
func SeedServices() []*entity.Service {
	return []*entity.Service{
		{
			ID:          "1",
			Title:       "House Cleaning",
			Description: "Professional house cleaning service including dusting, vacuuming, and sanitizing.",
			Category:    "Cleaning",
			Price:       1500,
			Duration:    "2-3 hours",
			ImageURL:    "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=800&q=80",
			IsActive:    true,
		},
		{
			ID:          "2",
			Title:       "Plumbing Repair",
			Description: "Fix leaks, unclog drains, and repair plumbing fixtures.",
			Category:    "Plumbing",
			Price:       2000,
			Duration:    "1-2 hours",
			ImageURL:    "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=800&q=80",
			IsActive:    true,
		},
		{
			ID:          "3",
			Title:       "Electrical Installation",
			Description: "Install new electrical outlets, switches, and lighting fixtures.",
			Category:    "Electrical",
			Price:       2500,
			Duration:    "2-4 hours",
			ImageURL:    "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=800&q=80",
			IsActive:    true,
		},
		{
			ID:          "4",
			Title:       "Gardening Service",
			Description: "Lawn mowing, trimming, and general garden maintenance.",
			Category:    "Gardening",
			Price:       1200,
			Duration:    "1-2 hours",
			ImageURL:    "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&q=80",
			IsActive:    true,
		},
		{
			ID:          "5",
			Title:       "Carpet Cleaning",
			Description: "Deep cleaning of carpets using professional equipment.",
			Category:    "Cleaning",
			Price:       1800,
			Duration:    "3-4 hours",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
			IsActive:    true,
		},
		{
			ID:          "6",
			Title:       "Appliance Repair",
			Description: "Repair household appliances including refrigerators, washers, and dryers.",
			Category:    "Repair",
			Price:       2200,
			Duration:    "1-3 hours",
			ImageURL:    "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=800&q=80",
			IsActive:    true,
		},
	}
}

// SeedBookings returns the sample bookings for the demo user.
func SeedBookings() []*entity.Booking {
	return []*entity.Booking{
		{
			ID:            "1",
			UserID:        "user1",
			ServiceID:     "1",
			ServiceTitle:  "House Cleaning",
			BookingDate:   "2024-12-01",
			BookingTime:   "10:00",
			Address:       "123 Main St, City",
			Status:        entity.BookingStatusConfirmed,
			TotalPrice:    1500,
			CustomerName:  "John Doe",
			CustomerEmail: "user@example.com",
			CreatedAt:     seedTime,
		},
		{
			ID:            "2",
			UserID:        "user1",
			ServiceID:     "2",
			ServiceTitle:  "Plumbing Repair",
			BookingDate:   "2024-12-05",
			BookingTime:   "14:00",
			Address:       "123 Main St, City",
			Status:        entity.BookingStatusPending,
			TotalPrice:    2000,
			CustomerName:  "John Doe",
			CustomerEmail: "user@example.com",
			CreatedAt:     seedTime,
		},
	}
}

// SeedCategories returns the categories used by the sample catalog.
func SeedCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "cat1", Name: "Cleaning"},
		{ID: "cat2", Name: "Plumbing"},
		{ID: "cat3", Name: "Electrical"},
		{ID: "cat4", Name: "Gardening"},
		{ID: "cat5", Name: "Repair"},
	}
}
