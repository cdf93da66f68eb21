package state

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"hostelhub/client/store"
)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(store.NewMemStore(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func activePatch() BookingPatch {
	return BookingPatch{
		RoomID:       ptr("r1"),
		RoomNumber:   ptr("101"),
		BookingID:    ptr("b1"),
		CheckInDate:  ptr("2026-09-01"),
		CheckOutDate: ptr("2026-09-04"),
		TotalPrice:   ptr(270.0),
		Guests:       &Guests{Adults: 2, Children: 1},
	}
}

func TestDefaults(t *testing.T) {
	s := newTestStore(t)

	got := s.Booking()
	want := BookingState{Guests: Guests{Adults: 1}}
	if got != want {
		t.Fatalf("defaults = %+v, want %+v", got, want)
	}
	if s.HasActiveBooking() {
		t.Fatal("fresh store reports an active booking")
	}
}

func TestSetBookingDataMerges(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetBookingData(activePatch()); err != nil {
		t.Fatalf("set booking data: %v", err)
	}
	if err := s.SetBookingData(BookingPatch{CheckOutDate: ptr("2026-09-05")}); err != nil {
		t.Fatalf("partial patch: %v", err)
	}

	got := s.Booking()
	if got.BookingID != "b1" || got.RoomNumber != "101" {
		t.Fatalf("merge dropped fields: %+v", got)
	}
	if got.CheckOutDate != "2026-09-05" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if !s.HasActiveBooking() {
		t.Fatal("expected active booking")
	}
}

func TestSetPaymentStatusTouchesOneField(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetBookingData(activePatch()); err != nil {
		t.Fatalf("set booking data: %v", err)
	}

	before := s.Booking()
	if err := s.SetPaymentStatus(true); err != nil {
		t.Fatalf("set payment status: %v", err)
	}
	after := s.Booking()

	if !after.PaymentStatus {
		t.Fatal("payment status not set")
	}
	after.PaymentStatus = before.PaymentStatus
	if after != before {
		t.Fatalf("other fields changed: before %+v after %+v", before, after)
	}
}

func TestResetBookingDataFromAnyState(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetBookingData(activePatch()); err != nil {
		t.Fatalf("set booking data: %v", err)
	}
	if err := s.SetPaymentStatus(true); err != nil {
		t.Fatalf("set payment status: %v", err)
	}

	if err := s.ResetBookingData(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	first := s.Booking()
	if first != DefaultBooking() {
		t.Fatalf("reset state = %+v", first)
	}

	// Idempotent: a second reset changes nothing.
	if err := s.ResetBookingData(); err != nil {
		t.Fatalf("second reset: %v", err)
	}
	if s.Booking() != first {
		t.Fatal("second reset diverged")
	}
}

func TestResidentDetailsLifecycle(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetResidentDetails("Asha", "asha@example.com"); err != nil {
		t.Fatalf("set resident details: %v", err)
	}
	if got := s.Resident(); got.Name != "Asha" || got.Email != "asha@example.com" {
		t.Fatalf("resident = %+v", got)
	}

	if err := s.ResetResidentDetails(); err != nil {
		t.Fatalf("reset resident details: %v", err)
	}
	if got := s.Resident(); got != (ResidentIdentity{}) {
		t.Fatalf("resident after reset = %+v", got)
	}
}

func TestHydrationBeforeFirstRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	fs, err := store.OpenFileStore(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}

	first, err := NewStore(fs, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := first.SetBookingData(activePatch()); err != nil {
		t.Fatalf("set booking data: %v", err)
	}
	if err := first.SetResidentDetails("Asha", "asha@example.com"); err != nil {
		t.Fatalf("set resident details: %v", err)
	}

	reopened, err := store.OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen file store: %v", err)
	}
	second, err := NewStore(reopened, zerolog.Nop())
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	if got := second.Booking(); got.BookingID != "b1" || got.TotalPrice != 270 {
		t.Fatalf("hydrated booking = %+v", got)
	}
	if got := second.Resident(); got.Name != "Asha" {
		t.Fatalf("hydrated resident = %+v", got)
	}
}
