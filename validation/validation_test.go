package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookbrick/validation"
)

func TestBookingFields(t *testing.T) {
	tests := []struct {
		description string
		fullName    string
		email       string
		service     string
		date        string
		expected    error
	}{
		{
			description: "all fields valid",
			fullName:    "Jane Doe",
			email:       "jane@example.com",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    nil,
		},
		{
			description: "missing name",
			fullName:    "",
			email:       "jane@example.com",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    validation.ErrMissingFields,
		},
		{
			description: "missing email",
			fullName:    "Jane Doe",
			email:       "",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    validation.ErrMissingFields,
		},
		{
			description: "missing service",
			fullName:    "Jane Doe",
			email:       "jane@example.com",
			service:     "",
			date:        "2030-06-01",
			expected:    validation.ErrMissingFields,
		},
		{
			description: "missing date",
			fullName:    "Jane Doe",
			email:       "jane@example.com",
			service:     "Room Booking",
			date:        "",
			expected:    validation.ErrMissingFields,
		},
		{
			description: "email without at sign",
			fullName:    "Jane Doe",
			email:       "jane.example.com",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    validation.ErrInvalidEmail,
		},
		{
			description: "email without domain dot",
			fullName:    "Jane Doe",
			email:       "jane@example",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    validation.ErrInvalidEmail,
		},
		{
			description: "email with whitespace",
			fullName:    "Jane Doe",
			email:       "jane doe@example.com",
			service:     "Room Booking",
			date:        "2030-06-01",
			expected:    validation.ErrInvalidEmail,
		},
		{
			description: "unparseable date",
			fullName:    "Jane Doe",
			email:       "jane@example.com",
			service:     "Room Booking",
			date:        "June 1st",
			expected:    validation.ErrInvalidDate,
		},
		{
			description: "impossible calendar date",
			fullName:    "Jane Doe",
			email:       "jane@example.com",
			service:     "Room Booking",
			date:        "2030-02-31",
			expected:    validation.ErrInvalidDate,
		},
	}

	for _, test := range tests {
		err := validation.BookingFields(test.fullName, test.email, test.service, test.date)
		if test.expected == nil {
			assert.NoErrorf(t, err, test.description)
		} else {
			assert.ErrorIsf(t, err, test.expected, test.description)
		}
	}
}

func TestNotPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	assert.NoError(t, validation.NotPast("2025-06-15", now), "today is allowed")
	assert.NoError(t, validation.NotPast("2025-06-16", now), "tomorrow is allowed")
	assert.ErrorIs(t, validation.NotPast("2025-06-14", now), validation.ErrPastDate)
	assert.ErrorIs(t, validation.NotPast("2024-12-31", now), validation.ErrPastDate)
	assert.ErrorIs(t, validation.NotPast("not-a-date", now), validation.ErrInvalidDate)
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Jane Doe", validation.Trim("  Jane Doe\t"))
	assert.Equal(t, "", validation.Trim("   "))
}
