package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookbrick/model"
)

// API is the remote booking service as the client core consumes it.
type API interface {
	CreateBooking(ctx context.Context, payload model.BookingPayload) (model.ServerBooking, error)
	ListBookings(ctx context.Context) ([]model.ServerBooking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// APIError is a non-2xx response from the booking API. Network-level
// failures are returned as plain wrapped errors instead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// envelope is the JSON wrapper every API response uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HTTPClient talks to the booking API over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) CreateBooking(ctx context.Context, payload model.BookingPayload) (model.ServerBooking, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.ServerBooking{}, fmt.Errorf("encode booking payload: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/api/bookings", bytes.NewReader(body))
	if err != nil {
		return model.ServerBooking{}, err
	}

	var booking model.ServerBooking
	if err := json.Unmarshal(env.Data, &booking); err != nil {
		return model.ServerBooking{}, fmt.Errorf("decode created booking: %w", err)
	}
	return booking, nil
}

func (c *HTTPClient) ListBookings(ctx context.Context) ([]model.ServerBooking, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/bookings", nil)
	if err != nil {
		return nil, err
	}

	bookings := []model.ServerBooking{}
	if err := json.Unmarshal(env.Data, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (c *HTTPClient) DeleteBooking(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil)
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader) (envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = res.Status
		}
		return envelope{}, &APIError{StatusCode: res.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("decode %s %s response: %w", method, path, decodeErr)
	}
	return env, nil
}
