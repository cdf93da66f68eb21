package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"hostelhub/internal/models"
	"hostelhub/internal/payment"
)

var (
	ErrAlreadyPaid      = errors.New("booking already paid")
	ErrCaptureInFlight  = errors.New("capture already in progress")
	ErrOrderMismatch    = errors.New("order does not belong to booking")
	ErrBookingCancelled = errors.New("booking is cancelled")
)

// BookingStore is the slice of the booking repository the payment flow
// needs.
type BookingStore interface {
	GetByID(ctx context.Context, id string) (models.Booking, error)
	SetPaymentOrder(ctx context.Context, id string, orderID string) error
	MarkPaid(ctx context.Context, id string) error
}

// ResidentStore updates the resident's status once their booking is paid.
type ResidentStore interface {
	UpdateResidentStatus(ctx context.Context, id string, status models.ResidentStatus) error
}

type PaymentService struct {
	bookings  BookingStore
	residents ResidentStore
	provider  payment.Provider
	cache     *redis.Client
	currency  string
	log       zerolog.Logger
}

func NewPaymentService(
	bookings BookingStore,
	residents ResidentStore,
	provider payment.Provider,
	cache *redis.Client,
	currency string,
	log zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		bookings:  bookings,
		residents: residents,
		provider:  provider,
		cache:     cache,
		currency:  currency,
		log:       log,
	}
}

func (s *PaymentService) CreateOrder(ctx context.Context, bookingID string, residentID string) (payment.Order, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return payment.Order{}, err
	}
	if booking.ResidentID != residentID {
		return payment.Order{}, ErrNotBookingOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return payment.Order{}, ErrBookingCancelled
	}
	if booking.Payment.Status {
		return payment.Order{}, ErrAlreadyPaid
	}

	order, err := s.provider.CreateOrder(ctx, booking.PriceBreakdown.TotalPrice, s.currency)
	if err != nil {
		return payment.Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.bookings.SetPaymentOrder(ctx, booking.ID, order.OrderID); err != nil {
		return payment.Order{}, err
	}

	return order, nil
}

func captureKey(orderID string) string {
	return "capture:" + orderID
}

// Capture confirms the payment with the provider and marks the booking
// paid. A redis guard makes the capture idempotent: a duplicate submission
// of the same order while one is in flight is rejected rather than captured
// twice.
func (s *PaymentService) Capture(ctx context.Context, orderID string, bookingID string, residentID string) (models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.ResidentID != residentID {
		return models.Booking{}, ErrNotBookingOwner
	}
	if booking.Payment.OrderID != orderID {
		return models.Booking{}, ErrOrderMismatch
	}
	if booking.Payment.Status {
		return models.Booking{}, ErrAlreadyPaid
	}

	ok, err := s.cache.SetNX(ctx, captureKey(orderID), "1", 10*time.Minute).Result()
	if err != nil {
		return models.Booking{}, fmt.Errorf("capture guard: %w", err)
	}
	if !ok {
		return models.Booking{}, ErrCaptureInFlight
	}

	capture, err := s.provider.CaptureOrder(ctx, orderID)
	if err != nil {
		// Release the guard so the resident can retry a declined capture.
		if delErr := s.cache.Del(ctx, captureKey(orderID)).Err(); delErr != nil {
			s.log.Warn().Err(delErr).Str("order_id", orderID).Msg("capture guard release failed")
		}
		return models.Booking{}, fmt.Errorf("capture order: %w", err)
	}

	if err := s.bookings.MarkPaid(ctx, booking.ID); err != nil {
		return models.Booking{}, err
	}

	if err := s.residents.UpdateResidentStatus(ctx, residentID, models.ResidentStatusActive); err != nil {
		s.log.Error().Err(err).Str("user_id", residentID).Msg("resident status update failed")
	}

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("order_id", orderID).
		Str("capture_id", capture.CaptureID).
		Msg("payment captured")

	booking.Payment.Status = true
	booking.Payment.CapturedAt = &capture.CapturedAt
	booking.Status = models.BookingStatusConfirmed
	return booking, nil
}
