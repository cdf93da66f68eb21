package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"hostelhub/client/store"
)

type createOrderRequest struct {
	BookingID string `json:"bookingId"`
}

func (c *Client) CreateOrder(ctx context.Context, bookingID string) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPost, "/api/v1/payment/create-order", createOrderRequest{BookingID: bookingID}, &order, true)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// CapturePayment finalizes the order. On success the local payment
// flag flips and the stored resident status becomes active, matching
// what the server now holds.
func (c *Client) CapturePayment(ctx context.Context, orderID, bookingID string) (Booking, error) {
	path := fmt.Sprintf("/api/v1/payment/capture-payment/%s?bookingId=%s",
		url.PathEscape(orderID), url.QueryEscape(bookingID))

	var payload struct {
		Booking Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, path, nil, &payload, true); err != nil {
		return Booking{}, err
	}

	if err := c.state.SetPaymentStatus(true); err != nil {
		return Booking{}, err
	}
	if err := c.storage.Write(store.KeyResidentStatus, "active"); err != nil {
		return Booking{}, err
	}
	return payload.Booking, nil
}
