package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/repository"
	"hostelhub/internal/service"
)

type createOrderRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

func (h HandlerSet) CreateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.payments.CreateOrder(c.Request.Context(), req.BookingID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyPaid), errors.Is(err, service.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderID":  order.OrderID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

func (h HandlerSet) CapturePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bookingID := c.Query("bookingId")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId required"})
		return
	}

	booking, err := h.payments.Capture(c.Request.Context(), c.Param("orderID"), bookingID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyPaid),
			errors.Is(err, service.ErrCaptureInFlight),
			errors.Is(err, service.ErrOrderMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "payment captured",
		"booking": toBookingResponse(booking),
	})
}
