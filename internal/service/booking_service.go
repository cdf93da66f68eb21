package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"hostelhub/internal/ids"
	"hostelhub/internal/models"
	"hostelhub/internal/repository"
)

var (
	ErrRoomUnavailable  = errors.New("room not available")
	ErrInvalidDates     = errors.New("invalid check-in/check-out dates")
	ErrInvalidGuests    = errors.New("invalid guest counts")
	ErrNotBookingOwner  = errors.New("booking belongs to another resident")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

const dateLayout = "2006-01-02"

type BookingService struct {
	bookings *repository.BookingRepository
	rooms    *repository.RoomRepository
	users    *repository.UserRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewBookingService(
	bookings *repository.BookingRepository,
	rooms *repository.RoomRepository,
	users *repository.UserRepository,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

type CreateBookingInput struct {
	ResidentID   string
	RoomID       string
	CheckInDate  string
	CheckOutDate string
	Guests       models.Guests
}

// ValidateStay checks date ordering and guest bounds and returns the number
// of nights.
func ValidateStay(checkIn, checkOut string, guests models.Guests, today time.Time) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("%w: check-in %q", ErrInvalidDates, checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("%w: check-out %q", ErrInvalidDates, checkOut)
	}

	day := today.Truncate(24 * time.Hour)
	if in.Before(day) {
		return 0, fmt.Errorf("%w: check-in is in the past", ErrInvalidDates)
	}
	if !out.After(in) {
		return 0, fmt.Errorf("%w: check-out must follow check-in", ErrInvalidDates)
	}

	if guests.Adults < 1 || guests.Children < 0 || guests.InfantsUnder2 < 0 {
		return 0, ErrInvalidGuests
	}

	return int(out.Sub(in).Hours() / 24), nil
}

// ComputePrice builds the price breakdown for a stay. Infants under 2 do not
// count toward capacity or price.
func ComputePrice(room models.Room, nights int) models.PriceBreakdown {
	base := room.Price * float64(nights)
	total := base * (1 - room.Discount/100)
	if total < 0 {
		total = 0
	}
	return models.PriceBreakdown{
		BasePrice:  room.Price,
		Nights:     nights,
		Discount:   room.Discount,
		TotalPrice: total,
	}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (models.Booking, error) {
	nights, err := ValidateStay(input.CheckInDate, input.CheckOutDate, input.Guests, s.now())
	if err != nil {
		return models.Booking{}, err
	}

	room, err := s.rooms.GetByID(ctx, input.RoomID)
	if err != nil {
		return models.Booking{}, err
	}
	if !room.Available {
		return models.Booking{}, ErrRoomUnavailable
	}
	if input.Guests.Adults+input.Guests.Children > room.Capacity {
		return models.Booking{}, fmt.Errorf("%w: capacity %d exceeded", ErrInvalidGuests, room.Capacity)
	}

	booking := models.Booking{
		ID:             ids.New(),
		RoomID:         room.ID,
		RoomNumber:     room.RoomNumber,
		ResidentID:     input.ResidentID,
		CheckInDate:    input.CheckInDate,
		CheckOutDate:   input.CheckOutDate,
		Guests:         input.Guests,
		PriceBreakdown: ComputePrice(room, nights),
		Status:         models.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	if err := s.rooms.SetAvailability(ctx, room.ID, false); err != nil {
		s.log.Error().Err(err).Str("room_id", room.ID).Msg("room hold failed")
	}

	return booking, nil
}

// Cancel releases the room and, when the booking was already paid, flags it
// for refund and downgrades the resident's status.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, residentID string) (models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.ResidentID != residentID {
		return models.Booking{}, ErrNotBookingOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return models.Booking{}, ErrAlreadyCancelled
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled); err != nil {
		return models.Booking{}, err
	}

	if booking.Payment.Status {
		if err := s.bookings.MarkRefunded(ctx, booking.ID); err != nil {
			s.log.Error().Err(err).Str("booking_id", booking.ID).Msg("refund flag failed")
		}
		if err := s.users.UpdateResidentStatus(ctx, residentID, models.ResidentStatusInactive); err != nil {
			s.log.Error().Err(err).Str("user_id", residentID).Msg("resident status downgrade failed")
		}
	}

	if err := s.rooms.SetAvailability(ctx, booking.RoomID, true); err != nil {
		s.log.Error().Err(err).Str("room_id", booking.RoomID).Msg("room release failed")
	}

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

// ActiveForResident returns the resident's current non-cancelled bookings.
func (s *BookingService) ActiveForResident(ctx context.Context, residentID string) ([]models.Booking, error) {
	return s.bookings.ListActiveByResident(ctx, residentID)
}

// ExpireUnpaid cancels pending bookings whose payment hold lapsed and frees
// their rooms. Returns the number of bookings expired.
func (s *BookingService) ExpireUnpaid(ctx context.Context, hold time.Duration) (int, error) {
	expired, err := s.bookings.ListExpiredUnpaid(ctx, int(hold.Hours()))
	if err != nil {
		return 0, err
	}

	for _, booking := range expired {
		if err := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled); err != nil {
			s.log.Error().Err(err).Str("booking_id", booking.ID).Msg("expire failed")
			continue
		}
		if err := s.rooms.SetAvailability(ctx, booking.RoomID, true); err != nil {
			s.log.Error().Err(err).Str("room_id", booking.RoomID).Msg("room release failed")
		}
	}
	return len(expired), nil
}
