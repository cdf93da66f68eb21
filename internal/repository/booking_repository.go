package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostelhub/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `id, room_id, room_number, resident_id, check_in_date, check_out_date,
	adults, children, infants_under_2, base_price, nights, discount, total_price,
	status, payment_status, payment_order_id, payment_captured_at, payment_refunded,
	created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, booking models.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, room_id, room_number, resident_id, check_in_date, check_out_date,
			adults, children, infants_under_2, base_price, nights, discount, total_price,
			status, payment_status, payment_order_id, payment_captured_at, payment_refunded,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18,
			NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.RoomNumber,
		booking.ResidentID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Guests.Adults,
		booking.Guests.Children,
		booking.Guests.InfantsUnder2,
		booking.PriceBreakdown.BasePrice,
		booking.PriceBreakdown.Nights,
		booking.PriceBreakdown.Discount,
		booking.PriceBreakdown.TotalPrice,
		booking.Status,
		booking.Payment.Status,
		booking.Payment.OrderID,
		booking.Payment.CapturedAt,
		booking.Payment.Refunded,
	)
	return err
}

func scanBooking(row pgx.Row) (models.Booking, error) {
	var booking models.Booking
	if err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.RoomNumber,
		&booking.ResidentID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Guests.Adults,
		&booking.Guests.Children,
		&booking.Guests.InfantsUnder2,
		&booking.PriceBreakdown.BasePrice,
		&booking.PriceBreakdown.Nights,
		&booking.PriceBreakdown.Discount,
		&booking.PriceBreakdown.TotalPrice,
		&booking.Status,
		&booking.Payment.Status,
		&booking.Payment.OrderID,
		&booking.Payment.CapturedAt,
		&booking.Payment.Refunded,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.pool.QueryRow(ctx, query, id))
}

// ListActiveByResident returns the resident's non-cancelled bookings,
// newest first.
func (r *BookingRepository) ListActiveByResident(ctx context.Context, residentID string) ([]models.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resident_id = $1 AND status <> 'cancelled'
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	const query = `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) SetPaymentOrder(ctx context.Context, id string, orderID string) error {
	const query = `UPDATE bookings SET payment_order_id = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id string) error {
	const query = `
		UPDATE bookings
		SET payment_status = TRUE,
		    payment_captured_at = NOW(),
		    status = 'confirmed',
		    updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) MarkRefunded(ctx context.Context, id string) error {
	const query = `UPDATE bookings SET payment_refunded = TRUE, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListExpiredUnpaid returns pending bookings that have gone unpaid past the
// hold window; the scheduler cancels them and frees their rooms.
func (r *BookingRepository) ListExpiredUnpaid(ctx context.Context, holdHours int) ([]models.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'pending'
		  AND NOT payment_status
		  AND created_at < NOW() - make_interval(hours => $1)
	`

	rows, err := r.pool.Query(ctx, query, holdHours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// RevenueByCategory aggregates captured booking revenue per room type over a
// date range.
func (r *BookingRepository) RevenueByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error) {
	const query = `
		SELECT r.room_type, COALESCE(SUM(b.total_price), 0)
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.payment_status
		  AND ($1 = '' OR b.payment_captured_at >= $1::date)
		  AND ($2 = '' OR b.payment_captured_at < $2::date + INTERVAL '1 day')
		GROUP BY r.room_type
		ORDER BY r.room_type
	`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var total models.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}
