package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/service"
)

type createExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
	SpentAt  string  `json:"spentAt"`
}

func (h HandlerSet) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var spentAt time.Time
	if req.SpentAt != "" {
		parsed, err := time.Parse("2006-01-02", req.SpentAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spentAt must be YYYY-MM-DD"})
			return
		}
		spentAt = parsed
	}

	expense, err := h.reports.CreateExpense(c.Request.Context(), service.CreateExpenseInput{
		Category: req.Category,
		Amount:   req.Amount,
		Notes:    req.Notes,
		SpentAt:  spentAt,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "expense recorded", "expense": expense})
}

func dateRange(c *gin.Context) (string, string, error) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	for _, date := range []string{startDate, endDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return "", "", fmt.Errorf("dates must be YYYY-MM-DD")
		}
	}
	return startDate, endDate, nil
}

func (h HandlerSet) ExpensesByCategory(c *gin.Context) {
	startDate, endDate, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.reports.ExpensesByCategory(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": totals})
}

func (h HandlerSet) RevenueByCategory(c *gin.Context) {
	startDate, endDate, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.reports.RevenueByCategory(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": totals})
}

// DownloadReport streams the requested PDF report.
func (h HandlerSet) DownloadReport(c *gin.Context) {
	startDate, endDate, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reportType := c.Param("reportType")
	data, err := h.reports.BuildReport(c.Request.Context(), reportType, startDate, endDate)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-report.pdf", reportType))
	c.Data(http.StatusOK, "application/pdf", data)
}
