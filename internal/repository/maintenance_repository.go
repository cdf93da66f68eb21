package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostelhub/internal/models"
)

var ErrRequestNotFound = errors.New("maintenance request not found")

type MaintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

const requestColumns = `id, issue_type, description, priority, room_number, resident_id,
	staff_id, status, created_at, resolved_at`

func (r *MaintenanceRepository) Create(ctx context.Context, request models.MaintenanceRequest) error {
	const query = `
		INSERT INTO maintenance_requests (
			id, issue_type, description, priority, room_number, resident_id,
			staff_id, status, created_at, resolved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NULL
		)
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.IssueType,
		request.Description,
		request.Priority,
		request.RoomNumber,
		request.ResidentID,
		request.StaffID,
		request.Status,
	)
	return err
}

func scanRequest(row pgx.Row) (models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := row.Scan(
		&request.ID,
		&request.IssueType,
		&request.Description,
		&request.Priority,
		&request.RoomNumber,
		&request.ResidentID,
		&request.StaffID,
		&request.Status,
		&request.CreatedAt,
		&request.ResolvedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MaintenanceRequest{}, ErrRequestNotFound
		}
		return models.MaintenanceRequest{}, err
	}
	return request, nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (models.MaintenanceRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM maintenance_requests WHERE id = $1`
	return scanRequest(r.pool.QueryRow(ctx, query, id))
}

func (r *MaintenanceRepository) listByCondition(ctx context.Context, query string, args ...any) ([]models.MaintenanceRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.MaintenanceRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *MaintenanceRepository) ListByStaff(ctx context.Context, staffID string) ([]models.MaintenanceRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM maintenance_requests
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`
	return r.listByCondition(ctx, query, staffID)
}

func (r *MaintenanceRepository) ListPending(ctx context.Context) ([]models.MaintenanceRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM maintenance_requests
		WHERE status = 'pending'
		ORDER BY
			CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			created_at
	`
	return r.listByCondition(ctx, query)
}

func (r *MaintenanceRepository) AssignStaff(ctx context.Context, id string, staffID string) error {
	const query = `
		UPDATE maintenance_requests
		SET staff_id = $2, status = 'assigned'
		WHERE id = $1 AND status = 'pending'
	`
	cmd, err := r.pool.Exec(ctx, query, id, staffID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *MaintenanceRepository) Resolve(ctx context.Context, id string, staffID string) error {
	const query = `
		UPDATE maintenance_requests
		SET status = 'resolved', resolved_at = NOW()
		WHERE id = $1 AND staff_id = $2 AND status = 'assigned'
	`
	cmd, err := r.pool.Exec(ctx, query, id, staffID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
