// Package state holds the persisted booking and resident identity
// slices. The store is the single owner of this state; callers mutate
// it only through the action methods below.
package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"hostelhub/client/store"
)

type Guests struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsUnder2 int `json:"infantsUnder2"`
}

type BookingState struct {
	RoomID        string  `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	BookingID     string  `json:"bookingId"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	TotalPrice    float64 `json:"totalPrice"`
	PaymentStatus bool    `json:"paymentStatus"`
	Guests        Guests  `json:"guests"`
}

type ResidentIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultBooking is the state with no active booking.
func DefaultBooking() BookingState {
	return BookingState{
		Guests: Guests{Adults: 1},
	}
}

// BookingPatch carries the fields SetBookingData should merge. Nil
// fields are left untouched.
type BookingPatch struct {
	RoomID        *string
	RoomNumber    *string
	BookingID     *string
	CheckInDate   *string
	CheckOutDate  *string
	TotalPrice    *float64
	PaymentStatus *bool
	Guests        *Guests
}

// Store serializes all mutations behind a mutex and writes every
// change through to durable storage before returning. Construction
// hydrates from storage, so readers never observe defaults while a
// persisted booking exists.
type Store struct {
	mu       sync.Mutex
	storage  store.Store
	booking  BookingState
	resident ResidentIdentity
	log      zerolog.Logger
}

func NewStore(storage store.Store, log zerolog.Logger) (*Store, error) {
	s := &Store{
		storage: storage,
		booking: DefaultBooking(),
		log:     log,
	}
	if err := s.hydrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate() error {
	if raw, ok := s.storage.Read(store.KeyBookingState); ok {
		if err := json.Unmarshal([]byte(raw), &s.booking); err != nil {
			return fmt.Errorf("hydrate booking state: %w", err)
		}
	}
	if raw, ok := s.storage.Read(store.KeyResidentState); ok {
		if err := json.Unmarshal([]byte(raw), &s.resident); err != nil {
			return fmt.Errorf("hydrate resident state: %w", err)
		}
	}
	return nil
}

func (s *Store) Booking() BookingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking
}

func (s *Store) Resident() ResidentIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resident
}

// HasActiveBooking reports whether a booking identifier is held.
func (s *Store) HasActiveBooking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking.BookingID != ""
}

// SetBookingData shallow-merges the patch into the current state.
func (s *Store) SetBookingData(patch BookingPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.booking
	if patch.RoomID != nil {
		next.RoomID = *patch.RoomID
	}
	if patch.RoomNumber != nil {
		next.RoomNumber = *patch.RoomNumber
	}
	if patch.BookingID != nil {
		next.BookingID = *patch.BookingID
	}
	if patch.CheckInDate != nil {
		next.CheckInDate = *patch.CheckInDate
	}
	if patch.CheckOutDate != nil {
		next.CheckOutDate = *patch.CheckOutDate
	}
	if patch.TotalPrice != nil {
		next.TotalPrice = *patch.TotalPrice
	}
	if patch.PaymentStatus != nil {
		next.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Guests != nil {
		next.Guests = *patch.Guests
	}

	return s.commitBookingLocked(next)
}

// SetPaymentStatus touches exactly one field.
func (s *Store) SetPaymentStatus(paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.booking
	next.PaymentStatus = paid
	return s.commitBookingLocked(next)
}

// ResetBookingData restores the all-default state. Called on logout
// and on cancellation so no stale identifiers survive. Idempotent.
func (s *Store) ResetBookingData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitBookingLocked(DefaultBooking())
}

func (s *Store) SetResidentDetails(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resident = ResidentIdentity{Name: name, Email: email}
	return s.commitResidentLocked()
}

func (s *Store) ResetResidentDetails() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resident = ResidentIdentity{}
	return s.commitResidentLocked()
}

func (s *Store) commitBookingLocked(next BookingState) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode booking state: %w", err)
	}
	if err := s.storage.Write(store.KeyBookingState, string(data)); err != nil {
		return fmt.Errorf("persist booking state: %w", err)
	}
	s.booking = next
	return nil
}

func (s *Store) commitResidentLocked() error {
	data, err := json.Marshal(s.resident)
	if err != nil {
		return fmt.Errorf("encode resident state: %w", err)
	}
	if err := s.storage.Write(store.KeyResidentState, string(data)); err != nil {
		return fmt.Errorf("persist resident state: %w", err)
	}
	return nil
}
