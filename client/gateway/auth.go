package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hostelhub/client/session"
	"hostelhub/client/store"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Registration struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}

type authPayload struct {
	Message        string   `json:"message"`
	Token          string   `json:"token"`
	Role           string   `json:"role"`
	ResidentStatus string   `json:"residentStatus"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Booking        *Booking `json:"booking"`
}

// Login authenticates and seeds the local stores: session keys are
// written together, resident identity is cached, and when the server
// reports a live booking the booking state is populated from it.
// Cancelled bookings never seed state.
func (c *Client) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", creds, &payload, false); err != nil {
		return session.Session{}, err
	}
	return c.adoptSession(payload)
}

// Register creates an account and logs in with the issued token.
func (c *Client) Register(ctx context.Context, reg Registration) (session.Session, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", reg, &payload, false); err != nil {
		return session.Session{}, err
	}
	return c.adoptSession(payload)
}

func (c *Client) adoptSession(payload authPayload) (session.Session, error) {
	role, err := session.ParseRole(payload.Role)
	if err != nil {
		return session.Session{}, fmt.Errorf("server sent unusable role: %w", err)
	}

	if err := c.storage.Write(store.KeyToken, payload.Token); err != nil {
		return session.Session{}, err
	}
	if err := c.storage.Write(store.KeyRole, payload.Role); err != nil {
		return session.Session{}, err
	}
	if err := c.storage.Write(store.KeyResidentStatus, payload.ResidentStatus); err != nil {
		return session.Session{}, err
	}

	if err := c.state.SetResidentDetails(payload.Name, payload.Email); err != nil {
		return session.Session{}, err
	}
	if err := c.state.ResetBookingData(); err != nil {
		return session.Session{}, err
	}
	if payload.Booking != nil && payload.Booking.Status != "cancelled" {
		if err := c.adoptBooking(*payload.Booking); err != nil {
			return session.Session{}, err
		}
	}

	return session.Session{
		Token:          payload.Token,
		Role:           role,
		ResidentStatus: payload.ResidentStatus,
	}, nil
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) ForgotPassword(ctx context.Context, email, role string) error {
	body := forgotPasswordRequest{Email: email, Role: role}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/forgot-password", body, nil, false)
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (c *Client) ResetPassword(ctx context.Context, userID, resetToken, password string) error {
	path := fmt.Sprintf("/api/v1/auth/reset-password/%s/%s", userID, resetToken)
	return c.do(ctx, http.MethodPost, path, resetPasswordRequest{Password: password}, nil, false)
}
