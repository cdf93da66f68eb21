package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrProviderDeclined = errors.New("payment provider declined")

type Order struct {
	OrderID  string
	Amount   float64
	Currency string
}

type Capture struct {
	OrderID    string
	CaptureID  string
	CapturedAt time.Time
}

// Provider is the external payment processor. Only order creation and
// capture confirmation are modeled; the widget the resident interacts with
// lives outside this service.
type Provider interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (Order, error)
	CaptureOrder(ctx context.Context, orderID string) (Capture, error)
}

// HTTPProvider talks to a REST payment API with basic-auth client
// credentials.
type HTTPProvider struct {
	baseURL      string
	clientID     string
	clientSecret string
	client       *http.Client
}

func NewHTTPProvider(baseURL, clientID, clientSecret string) *HTTPProvider {
	return &HTTPProvider{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: 20 * time.Second},
	}
}

type orderRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (p *HTTPProvider) CreateOrder(ctx context.Context, amount float64, currency string) (Order, error) {
	body := orderRequest{
		Amount:   fmt.Sprintf("%.2f", amount),
		Currency: currency,
	}

	var resp orderResponse
	if err := p.post(ctx, "/v2/checkout/orders", body, &resp); err != nil {
		return Order{}, err
	}
	if resp.ID == "" {
		return Order{}, ErrProviderDeclined
	}

	return Order{OrderID: resp.ID, Amount: amount, Currency: currency}, nil
}

type captureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (p *HTTPProvider) CaptureOrder(ctx context.Context, orderID string) (Capture, error) {
	var resp captureResponse
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID)
	if err := p.post(ctx, path, struct{}{}, &resp); err != nil {
		return Capture{}, err
	}
	if resp.Status != "COMPLETED" {
		return Capture{}, fmt.Errorf("%w: status %s", ErrProviderDeclined, resp.Status)
	}

	return Capture{
		OrderID:    orderID,
		CaptureID:  resp.ID,
		CapturedAt: time.Now(),
	}, nil
}

func (p *HTTPProvider) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider status %d: %s", resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
