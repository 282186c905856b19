package transport

import (
	"errors"
	"net/http"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/Zekken26/quick-serve/internal/service"
	"github.com/Zekken26/quick-serve/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetMyBookings возвращает бронирования текущего пользователя.
// Без сессии возвращается пустой список, а не ошибка.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		c.JSON(http.StatusOK, []*entity.Booking{})
		return
	}

	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking создает бронирование для текущего пользователя
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking применяет частичное обновление бронирования.
// Владелец меняет дату, время и адрес и может отменить бронирование,
// пока оно pending или confirmed; админ также меняет статус и цену.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var patch entity.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isAdmin := user.Role == entity.RoleAdmin
	if !isAdmin {
		if booking.UserID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		patch = ownerPatch(&patch, booking.Status)
	}

	updated, err := h.bookingService.UpdateBooking(c.Request.Context(), booking.ID, &patch)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoUpdatableFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrInvalidBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetAllBookings возвращает все бронирования для админ-консоли,
// опционально отфильтрованные по статусу
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		bookings, err := h.bookingService.GetBookingsByStatus(ctx, entity.BookingStatus(status))
		if err != nil {
			if errors.Is(err, entity.ErrInvalidBookingStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := h.bookingService.GetAllBookings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ownerPatch оставляет только поля, которые владелец может менять.
// Отмена допускается для pending и confirmed бронирований; прочие
// изменения статуса и цены отбрасываются без ошибки.
func ownerPatch(patch *entity.BookingPatch, current entity.BookingStatus) entity.BookingPatch {
	allowed := entity.BookingPatch{
		BookingDate: patch.BookingDate,
		BookingTime: patch.BookingTime,
		Address:     patch.Address,
	}
	if patch.Status != nil && *patch.Status == entity.BookingStatusCancelled {
		if current == entity.BookingStatusPending || current == entity.BookingStatusConfirmed {
			allowed.Status = patch.Status
		}
	}
	return allowed
}
