package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"hostelhub/internal/ids"
	"hostelhub/internal/models"
	"hostelhub/internal/report"
	"hostelhub/internal/repository"
	"hostelhub/internal/storage"
)

var ErrUnknownReportType = errors.New("unknown report type")

type ReportService struct {
	expenses *repository.ExpenseRepository
	bookings *repository.BookingRepository
	store    *storage.ObjectStore
	log      zerolog.Logger
}

func NewReportService(
	expenses *repository.ExpenseRepository,
	bookings *repository.BookingRepository,
	store *storage.ObjectStore,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		expenses: expenses,
		bookings: bookings,
		store:    store,
		log:      log,
	}
}

type CreateExpenseInput struct {
	Category string
	Amount   float64
	Notes    string
	SpentAt  time.Time
}

func (s *ReportService) CreateExpense(ctx context.Context, input CreateExpenseInput) (models.Expense, error) {
	if input.Category == "" {
		return models.Expense{}, fmt.Errorf("category required")
	}
	if input.Amount <= 0 {
		return models.Expense{}, fmt.Errorf("amount must be positive")
	}

	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}

	expense := models.Expense{
		ID:       ids.New(),
		Category: input.Category,
		Amount:   input.Amount,
		Notes:    input.Notes,
		SpentAt:  spentAt,
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (s *ReportService) ExpensesByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error) {
	return s.expenses.TotalsByCategory(ctx, startDate, endDate)
}

func (s *ReportService) RevenueByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error) {
	return s.bookings.RevenueByCategory(ctx, startDate, endDate)
}

// BuildReport renders the requested report as a PDF and archives a copy in
// the object store.
func (s *ReportService) BuildReport(ctx context.Context, reportType string, startDate, endDate string) ([]byte, error) {
	var (
		title  string
		totals []models.CategoryTotal
		err    error
	)

	switch reportType {
	case "expense":
		title = "Expense"
		totals, err = s.expenses.TotalsByCategory(ctx, startDate, endDate)
	case "revenue":
		title = "Revenue"
		totals, err = s.bookings.RevenueByCategory(ctx, startDate, endDate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
	if err != nil {
		return nil, err
	}

	data, err := report.Build(title, startDate, endDate, totals)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.pdf", reportType, time.Now().Format("2006-01-02T15-04-05"))
	if err := s.store.PutReport(ctx, key, data); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("report archive failed")
	}

	return data, nil
}
