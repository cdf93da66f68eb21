package service

import (
	"errors"
	"testing"
	"time"

	"hostelhub/internal/models"
)

var testToday = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func TestValidateStay(t *testing.T) {
	okGuests := models.Guests{Adults: 1}

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		guests   models.Guests
		nights   int
		wantErr  error
	}{
		{"two nights", "2026-09-01", "2026-09-03", okGuests, 2, nil},
		{"same day today", "2026-08-31", "2026-09-01", okGuests, 1, nil},
		{"check-in in past", "2026-08-30", "2026-09-01", okGuests, 0, ErrInvalidDates},
		{"check-out before check-in", "2026-09-03", "2026-09-01", okGuests, 0, ErrInvalidDates},
		{"zero nights", "2026-09-01", "2026-09-01", okGuests, 0, ErrInvalidDates},
		{"garbage date", "not-a-date", "2026-09-01", okGuests, 0, ErrInvalidDates},
		{"no adults", "2026-09-01", "2026-09-03", models.Guests{Adults: 0}, 0, ErrInvalidGuests},
		{"negative children", "2026-09-01", "2026-09-03", models.Guests{Adults: 1, Children: -1}, 0, ErrInvalidGuests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nights, err := ValidateStay(tc.checkIn, tc.checkOut, tc.guests, testToday)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if nights != tc.nights {
				t.Errorf("nights = %d, want %d", nights, tc.nights)
			}
		})
	}
}

func TestComputePrice(t *testing.T) {
	room := models.Room{Price: 100, Discount: 10}

	breakdown := ComputePrice(room, 3)
	if breakdown.Nights != 3 {
		t.Errorf("nights = %d, want 3", breakdown.Nights)
	}
	if breakdown.BasePrice != 100 {
		t.Errorf("basePrice = %v, want 100", breakdown.BasePrice)
	}
	if breakdown.TotalPrice != 270 {
		t.Errorf("totalPrice = %v, want 270", breakdown.TotalPrice)
	}
}

func TestComputePriceNoDiscount(t *testing.T) {
	room := models.Room{Price: 45.5}

	breakdown := ComputePrice(room, 2)
	if breakdown.TotalPrice != 91 {
		t.Errorf("totalPrice = %v, want 91", breakdown.TotalPrice)
	}
	if breakdown.Discount != 0 {
		t.Errorf("discount = %v, want 0", breakdown.Discount)
	}
}
