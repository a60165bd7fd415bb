package client

import (
	"context"
	"log"

	"bookbrick/model"
	"bookbrick/validation"
)

// SubmitStatus is the terminal state of one submission attempt.
type SubmitStatus string

const (
	SubmitConfirmed   SubmitStatus = "confirmed"
	SubmitQueuedLocal SubmitStatus = "queued-local"
)

// SubmitResult describes what happened to an accepted submission.
type SubmitResult struct {
	Status  SubmitStatus
	Record  model.BookingRecord
	Message string
}

// Submit runs one booking submission: validate, guard against a same-
// session conflict, then try the remote create. A remote failure is not
// an error; the booking is queued locally for a later sync pass instead.
// Validation failures return an error and leave the session untouched.
//
// Past dates are deliberately not checked here; the server is the
// authority and judges queued bookings when they arrive.
func (s *Session) Submit(ctx context.Context, fullName, email, service, date string) (SubmitResult, error) {
	fullName = validation.Trim(fullName)
	email = validation.Trim(email)
	service = validation.Trim(service)
	date = validation.Trim(date)

	if err := validation.BookingFields(fullName, email, service, date); err != nil {
		return SubmitResult{}, err
	}

	// Soft conflict guard: only catches double-booking within this
	// session's list, not across clients.
	for _, r := range s.reservations {
		if r.Date == date && r.Service == service {
			return SubmitResult{}, validation.ErrConflict
		}
	}

	payload := model.BookingPayload{
		Name:    fullName,
		Email:   email,
		Service: service,
		Date:    date,
	}

	row, err := s.api.CreateBooking(ctx, payload)
	if err != nil {
		log.Printf("booking create failed, falling back to local store: %v", err)
		rec := model.NewLocalRecord(fullName, email, service, date)
		if perr := s.Prepend(rec); perr != nil {
			return SubmitResult{}, perr
		}
		return SubmitResult{
			Status:  SubmitQueuedLocal,
			Record:  rec,
			Message: "Reservation saved locally (offline).",
		}, nil
	}

	rec := model.NewServerRecord(payload, row)
	if perr := s.Prepend(rec); perr != nil {
		return SubmitResult{}, perr
	}
	return SubmitResult{
		Status:  SubmitConfirmed,
		Record:  rec,
		Message: "Reservation saved to server.",
	}, nil
}
