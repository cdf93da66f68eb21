package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"hostelhub/internal/ids"
	"hostelhub/internal/models"
	"hostelhub/internal/repository"
)

var (
	ErrNoRoomContext   = errors.New("no room associated with resident")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrNotStaffMember  = errors.New("assignee is not a staff member")
)

type MaintenanceService struct {
	requests *repository.MaintenanceRepository
	users    *repository.UserRepository
	log      zerolog.Logger
}

func NewMaintenanceService(
	requests *repository.MaintenanceRepository,
	users *repository.UserRepository,
	log zerolog.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		requests: requests,
		users:    users,
		log:      log,
	}
}

type CreateRequestInput struct {
	ResidentID  string
	RoomNumber  string
	IssueType   string
	Description string
	Priority    models.RequestPriority
}

func (s *MaintenanceService) Create(ctx context.Context, input CreateRequestInput) (models.MaintenanceRequest, error) {
	// A request needs a room to point maintenance at; residents without an
	// active booking have none.
	if input.RoomNumber == "" {
		return models.MaintenanceRequest{}, ErrNoRoomContext
	}

	switch input.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return models.MaintenanceRequest{}, fmt.Errorf("%w: %q", ErrInvalidPriority, input.Priority)
	}

	request := models.MaintenanceRequest{
		ID:          ids.New(),
		IssueType:   input.IssueType,
		Description: input.Description,
		Priority:    input.Priority,
		RoomNumber:  input.RoomNumber,
		ResidentID:  input.ResidentID,
		Status:      models.RequestStatusPending,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return models.MaintenanceRequest{}, err
	}
	return request, nil
}

func (s *MaintenanceService) QueueForStaff(ctx context.Context, staffID string) ([]models.MaintenanceRequest, error) {
	return s.requests.ListByStaff(ctx, staffID)
}

func (s *MaintenanceService) Pending(ctx context.Context) ([]models.MaintenanceRequest, error) {
	return s.requests.ListPending(ctx)
}

func (s *MaintenanceService) AssignStaff(ctx context.Context, requestID string, staffID string) error {
	staff, err := s.users.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if staff.Role != models.UserRoleStaff {
		return ErrNotStaffMember
	}

	return s.requests.AssignStaff(ctx, requestID, staffID)
}

func (s *MaintenanceService) Resolve(ctx context.Context, requestID string, staffID string) error {
	return s.requests.Resolve(ctx, requestID, staffID)
}

func (s *MaintenanceService) AvailableStaff(ctx context.Context) ([]models.User, error) {
	return s.users.ListAvailableStaff(ctx)
}
