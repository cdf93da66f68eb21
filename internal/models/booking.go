package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Guests struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsUnder2 int `json:"infantsUnder2"`
}

type PriceBreakdown struct {
	BasePrice  float64 `json:"basePrice"`
	Nights     int     `json:"nights"`
	Discount   float64 `json:"discount"`
	TotalPrice float64 `json:"totalPrice"`
}

type Payment struct {
	Status     bool
	OrderID    string
	CapturedAt *time.Time
	Refunded   bool
}

type Booking struct {
	ID             string
	RoomID         string
	RoomNumber     string
	ResidentID     string
	CheckInDate    string
	CheckOutDate   string
	Guests         Guests
	PriceBreakdown PriceBreakdown
	Status         BookingStatus
	Payment        Payment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
