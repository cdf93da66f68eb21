// Package gateway is the client's single door to the backend API. It
// attaches the stored bearer token at call time, normalizes failures
// into APIError and keeps the local session and state stores in step
// with what the server reports.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"hostelhub/client/session"
	"hostelhub/client/state"
	"hostelhub/client/store"
)

// ErrSessionExpired is returned when an authenticated call finds no
// usable credential. The stale session has already been cleared.
var ErrSessionExpired = errors.New("session expired")

// APIError is the uniform failure shape for any non-2xx response.
// Message carries the server-provided text when decodable and a
// generic fallback otherwise.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL  string
	http     *http.Client
	storage  store.Store
	sessions *session.Evaluator
	state    *state.Store
	log      zerolog.Logger
}

func New(baseURL string, storage store.Store, sessions *session.Evaluator, stateStore *state.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		storage:  storage,
		sessions: sessions,
		state:    stateStore,
		log:      log,
	}
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// do performs one request. Authenticated calls run Repair first so a
// stale credential is cleared before it ever reaches the wire, then
// short-circuit with ErrSessionExpired. No retries, no token refresh.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var token string
	if authed {
		c.sessions.Repair()
		sess, ok := c.sessions.Session()
		if !ok {
			return ErrSessionExpired
		}
		token = sess.Token
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}
		*raw = data
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (c *Client) failure(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: "request failed",
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case payload.Message != "":
			apiErr.Message = payload.Message
		}
	}

	// A 401 means the server no longer honors the credential; clear
	// the local session here rather than waiting for a navigation.
	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSessionKeys()
	}

	return apiErr
}

func (c *Client) clearSessionKeys() {
	for _, key := range []string{store.KeyToken, store.KeyRole, store.KeyResidentStatus} {
		if err := c.storage.Remove(key); err != nil {
			c.log.Error().Err(err).Str("key", key).Msg("session key removal failed")
		}
	}
}

// Logout is purely local: the token is stateless server-side.
func (c *Client) Logout() error {
	c.clearSessionKeys()
	if err := c.state.ResetBookingData(); err != nil {
		return err
	}
	return c.state.ResetResidentDetails()
}
