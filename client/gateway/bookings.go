package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hostelhub/client/state"
)

type ReserveRoomInput struct {
	RoomID       string       `json:"roomId"`
	CheckInDate  string       `json:"checkInDate"`
	CheckOutDate string       `json:"checkOutDate"`
	Guests       state.Guests `json:"guests"`
}

// CreateBooking reserves a room and replaces the local booking state
// with what the server confirmed.
func (c *Client) CreateBooking(ctx context.Context, input ReserveRoomInput) (Booking, error) {
	var payload struct {
		Booking Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/booking/create", input, &payload, true); err != nil {
		return Booking{}, err
	}
	if err := c.adoptBooking(payload.Booking); err != nil {
		return Booking{}, err
	}
	return payload.Booking, nil
}

func (c *Client) adoptBooking(b Booking) error {
	guests := b.Guests
	return c.state.SetBookingData(state.BookingPatch{
		RoomID:        &b.RoomID,
		RoomNumber:    &b.RoomNumber,
		BookingID:     &b.BookingID,
		CheckInDate:   &b.CheckInDate,
		CheckOutDate:  &b.CheckOutDate,
		TotalPrice:    &b.TotalPrice,
		PaymentStatus: &b.Paid,
		Guests:        &guests,
	})
}

// CancelBooking cancels server-side, then resets local booking state
// so no stale identifiers survive.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := fmt.Sprintf("/api/v1/booking/cancel/%s", bookingID)
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, true); err != nil {
		return err
	}
	return c.state.ResetBookingData()
}

// ResidentBooking fetches the resident's non-cancelled bookings.
func (c *Client) ResidentBooking(ctx context.Context) ([]Booking, error) {
	var payload struct {
		Data []Booking `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/resident/get-booking", nil, &payload, true); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/v1/resident/profile", nil, &profile, true); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

type EditProfileInput struct {
	Name                        string `json:"name"`
	PhoneNumber                 string `json:"phoneNumber,omitempty"`
	EmergencyContactName        string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhoneNumber string `json:"emergencyContactPhoneNumber,omitempty"`
}

func (c *Client) EditProfile(ctx context.Context, input EditProfileInput) error {
	return c.do(ctx, http.MethodPut, "/api/v1/resident/profile/edit", input, nil, true)
}
