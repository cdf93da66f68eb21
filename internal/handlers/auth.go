package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
	"hostelhub/internal/service"
)

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

type bookingResponse struct {
	BookingID    string        `json:"bookingId"`
	RoomID       string        `json:"roomId"`
	RoomNumber   string        `json:"roomNumber"`
	CheckInDate  string        `json:"checkInDate"`
	CheckOutDate string        `json:"checkOutDate"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       string        `json:"bookingStatus"`
	Paid         bool          `json:"paymentStatus"`
	Guests       models.Guests `json:"guests"`
}

type authResponse struct {
	Message        string           `json:"message"`
	Token          string           `json:"token"`
	Role           string           `json:"role"`
	ResidentStatus string           `json:"residentStatus"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Booking        *bookingResponse `json:"booking,omitempty"`
}

func toBookingResponse(booking models.Booking) bookingResponse {
	return bookingResponse{
		BookingID:    booking.ID,
		RoomID:       booking.RoomID,
		RoomNumber:   booking.RoomNumber,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		TotalPrice:   booking.PriceBreakdown.TotalPrice,
		Status:       string(booking.Status),
		Paid:         booking.Payment.Status,
		Guests:       booking.Guests,
	}
}

func sendAuthResponse(c *gin.Context, message string, result service.AuthResult) {
	resp := authResponse{
		Message:        message,
		Token:          result.Token,
		Role:           string(result.User.Role),
		ResidentStatus: string(result.User.ResidentStatus),
		Name:           result.User.Name,
		Email:          result.User.Email,
	}
	if result.ActiveBooking != nil {
		booking := toBookingResponse(*result.ActiveBooking)
		resp.Booking = &booking
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.UserRole(req.Role)
	switch role {
	case "", models.UserRoleResident:
		role = models.UserRoleResident
	case models.UserRoleStaff, models.UserRoleAdmin:
		// Staff and admin accounts are provisioned through the same flow
		// for now; the admin console gates who may reach this form.
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrEmailTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	sendAuthResponse(c, "registered successfully", result)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.UserRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sendAuthResponse(c, "logged in successfully", result)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

func (h HandlerSet) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email, models.UserRole(req.Role)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset link has been sent"})
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

func (h HandlerSet) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.auth.ResetPassword(c.Request.Context(), c.Param("id"), c.Param("resetToken"), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
