package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostelhub/internal/models"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room number already exists")
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

const roomColumns = `id, room_number, room_type, price, capacity, amenities, description,
	discount, stars, photo_keys, available, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, room models.Room) error {
	const query = `
		INSERT INTO rooms (
			id, room_number, room_type, price, capacity, amenities, description,
			discount, stars, photo_keys, available, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
		)
		ON CONFLICT (room_number) DO NOTHING
	`

	cmd, err := r.pool.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.RoomType,
		room.Price,
		room.Capacity,
		room.Amenities,
		room.Description,
		room.Discount,
		room.Stars,
		room.PhotoKeys,
		room.Available,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrRoomExists
	}
	return nil
}

func scanRoom(row pgx.Row) (models.Room, error) {
	var room models.Room
	if err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.RoomType,
		&room.Price,
		&room.Capacity,
		&room.Amenities,
		&room.Description,
		&room.Discount,
		&room.Stars,
		&room.PhotoKeys,
		&room.Available,
		&room.CreatedAt,
		&room.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (models.Room, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	return scanRoom(r.pool.QueryRow(ctx, query, id))
}

func (r *RoomRepository) GetByNumber(ctx context.Context, roomNumber string) (models.Room, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`
	return scanRoom(r.pool.QueryRow(ctx, query, roomNumber))
}

func (r *RoomRepository) ListAvailable(ctx context.Context) ([]models.Room, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE available ORDER BY room_number`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *RoomRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	const query = `UPDATE rooms SET available = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, available)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrRoomNotFound
	}
	return nil
}
