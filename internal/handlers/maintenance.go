package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
	"hostelhub/internal/repository"
	"hostelhub/internal/service"
)

type createRequestRequest struct {
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	RoomNumber  string `json:"roomNumber"`
}

func (h HandlerSet) CreateMaintenanceRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.maintenance.Create(c.Request.Context(), service.CreateRequestInput{
		ResidentID:  user.ID,
		RoomNumber:  req.RoomNumber,
		IssueType:   req.IssueType,
		Description: req.Description,
		Priority:    models.RequestPriority(req.Priority),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRoomContext), errors.Is(err, service.ErrInvalidPriority):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "maintenance request created",
		"request": request,
	})
}

func (h HandlerSet) StaffRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.maintenance.QueueForStaff(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h HandlerSet) ResolveRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.maintenance.Resolve(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request resolved"})
}

func (h HandlerSet) PendingRequests(c *gin.Context) {
	requests, err := h.maintenance.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type assignStaffRequest struct {
	StaffID string `json:"staffId" binding:"required"`
}

func (h HandlerSet) AssignStaff(c *gin.Context) {
	var req assignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.maintenance.AssignStaff(c.Request.Context(), c.Param("requestId"), req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound), errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotStaffMember):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "staff assigned"})
}

func (h HandlerSet) AvailableStaff(c *gin.Context) {
	staff, err := h.maintenance.AvailableStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type staffResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	data := make([]staffResponse, 0, len(staff))
	for _, member := range staff {
		data = append(data, staffResponse{ID: member.ID, Name: member.Name, Email: member.Email})
	}

	c.JSON(http.StatusOK, gin.H{"staff": data})
}
