package entity

import "errors"

var (
	// Service errors
	ErrServiceNotFound = errors.New("service not found")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")

	// Category errors
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// Upload errors
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// General errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoUpdatableFields = errors.New("no updatable fields provided")
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrForbidden         = errors.New("forbidden operation")
)
