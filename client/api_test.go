package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookbrick/client"
	"bookbrick/model"
)

func TestHTTPClientCreateBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload model.BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Jane Doe", payload.Name)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Booking created successfully",
			"data": model.ServerBooking{
				ID:        7,
				Name:      payload.Name,
				Email:     payload.Email,
				Service:   payload.Service,
				Date:      payload.Date,
				CreatedAt: "2025-06-01T10:00:00Z",
			},
		})
	}))
	defer server.Close()

	api := client.New(server.URL)
	booking, err := api.CreateBooking(context.Background(), model.BookingPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "Consultation",
		Date:    "2025-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, "Jane Doe", booking.Name)
}

func TestHTTPClientCreateBookingServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Cannot book a past date",
		})
	}))
	defer server.Close()

	api := client.New(server.URL)
	_, err := api.CreateBooking(context.Background(), model.BookingPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "Consultation",
		Date:    "1999-01-01",
	})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Cannot book a past date", apiErr.Message)
}

func TestHTTPClientCreateBookingNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	api := client.New(server.URL)
	_, err := api.CreateBooking(context.Background(), model.BookingPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "Consultation",
		Date:    "2025-06-01",
	})

	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "network failures are not APIErrors")
}

func TestHTTPClientListBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Fetch bookings successful",
			"data": []model.ServerBooking{
				{ID: 2, Name: "Newer", Email: "b@example.com", Service: "Room Booking", Date: "2025-06-02"},
				{ID: 1, Name: "Older", Email: "a@example.com", Service: "Consultation", Date: "2025-06-01"},
			},
		})
	}))
	defer server.Close()

	api := client.New(server.URL)
	bookings, err := api.ListBookings(context.Background())
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	assert.Equal(t, "Newer", bookings[0].Name)
}

func TestHTTPClientDeleteBookingNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/bookings/99", r.URL.Path)

		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Booking not found",
		})
	}))
	defer server.Close()

	api := client.New(server.URL)
	err := api.DeleteBooking(context.Background(), 99)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Booking not found", apiErr.Message)
}
