// Package validation holds the booking field checks shared by the API
// handlers and the client submission flow.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrPastDate      = errors.New("cannot book a past date")
	ErrConflict      = errors.New("service already reserved on that date")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// BookingFields checks field presence, email shape and date parseability,
// in that order, stopping at the first failure. Inputs are expected to be
// trimmed by the caller.
func BookingFields(fullName, email, service, date string) error {
	if fullName == "" || email == "" || service == "" || date == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// NotPast rejects dates before today at local midnight. Only the server
// enforces this; offline submissions are accepted as-is and judged when
// they reach the server.
func NotPast(date string, now time.Time) error {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrPastDate
	}
	return nil
}

// Trim normalizes user input the way the form does before any check runs.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
