package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
)

type profileResponse struct {
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	PhoneNumber      string                  `json:"phoneNumber"`
	ResidentStatus   string                  `json:"residentStatus"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
}

func (h HandlerSet) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		ResidentStatus:   string(user.ResidentStatus),
		EmergencyContact: user.EmergencyContact,
	})
}

type editProfileRequest struct {
	Name                        string `json:"name" binding:"required"`
	PhoneNumber                 string `json:"phoneNumber"`
	EmergencyContactName        string `json:"emergencyContactName"`
	EmergencyContactPhoneNumber string `json:"emergencyContactPhoneNumber"`
}

func (h HandlerSet) EditProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req editProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Name = req.Name
	user.PhoneNumber = req.PhoneNumber
	user.EmergencyContact = models.EmergencyContact{
		Name:        req.EmergencyContactName,
		PhoneNumber: req.EmergencyContactPhoneNumber,
	}

	if err := h.users.UpdateProfile(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
