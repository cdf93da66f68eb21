package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
	"hostelhub/internal/repository"
	"hostelhub/internal/service"
)

type createBookingRequest struct {
	RoomID       string        `json:"roomId" binding:"required"`
	CheckInDate  string        `json:"checkInDate" binding:"required"`
	CheckOutDate string        `json:"checkOutDate" binding:"required"`
	Guests       models.Guests `json:"guests"`
}

func (h HandlerSet) CreateBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), service.CreateBookingInput{
		ResidentID:   user.ID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDates), errors.Is(err, service.ErrInvalidGuests):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "room reserved",
		"booking": toBookingResponse(booking),
	})
}

func (h HandlerSet) CancelBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	booking, err := h.bookings.Cancel(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "booking cancelled",
		"refunded": booking.Payment.Status,
	})
}

// ResidentBooking returns the resident's non-cancelled bookings for client
// rehydration after login.
func (h HandlerSet) ResidentBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bookings, err := h.bookings.ActiveForResident(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := make([]bookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		data = append(data, toBookingResponse(booking))
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
