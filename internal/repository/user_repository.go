package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostelhub/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, phone_number, role, resident_status,
	emergency_contact_name, emergency_contact_phone, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (
			id, name, email, password_hash, phone_number, role, resident_status,
			emergency_contact_name, emergency_contact_phone, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PhoneNumber,
		user.Role,
		user.ResidentStatus,
		user.EmergencyContact.Name,
		user.EmergencyContact.PhoneNumber,
	)
	return err
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.PhoneNumber,
		&user.Role,
		&user.ResidentStatus,
		&user.EmergencyContact.Name,
		&user.EmergencyContact.PhoneNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND role = $2`
	return scanUser(r.pool.QueryRow(ctx, query, email, role))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user models.User) error {
	const query = `
		UPDATE users
		SET name = $2,
		    phone_number = $3,
		    emergency_contact_name = $4,
		    emergency_contact_phone = $5,
		    updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.PhoneNumber,
		user.EmergencyContact.Name,
		user.EmergencyContact.PhoneNumber,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateResidentStatus(ctx context.Context, id string, status models.ResidentStatus) error {
	const query = `UPDATE users SET resident_status = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListAvailableStaff returns staff members with no open maintenance
// assignment.
func (r *UserRepository) ListAvailableStaff(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.role = 'staff'
		  AND NOT EXISTS (
			SELECT 1 FROM maintenance_requests m
			WHERE m.staff_id = u.id AND m.status = 'assigned'
		  )
		ORDER BY u.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, user)
	}
	return staff, rows.Err()
}
