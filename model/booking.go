package model

import "github.com/google/uuid"

// Status tells whether a booking record has been confirmed by the server
// or is still held locally, waiting for a sync pass.
type Status string

const (
	StatusLocal  Status = "local"
	StatusServer Status = "server"
)

// BookingRecord is one reservation as the client sees it. Records with
// StatusLocal are provisional; once a sync pass confirms one it is
// replaced by a StatusServer record carrying the persisted row.
type BookingRecord struct {
	ID             string         `json:"id"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	Service        string         `json:"service"`
	Date           string         `json:"date"`
	Status         Status         `json:"status"`
	ServerResponse *ServerBooking `json:"server_response,omitempty"`
}

// NewLocalRecord builds a provisional record for a booking that could not
// reach the server.
func NewLocalRecord(fullName, email, service, date string) BookingRecord {
	return BookingRecord{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
		Service:  service,
		Date:     date,
		Status:   StatusLocal,
	}
}

// NewServerRecord builds a confirmed record from the payload that was sent
// and the row the server returned.
func NewServerRecord(payload BookingPayload, row ServerBooking) BookingRecord {
	return BookingRecord{
		ID:             uuid.NewString(),
		FullName:       payload.Name,
		Email:          payload.Email,
		Service:        payload.Service,
		Date:           payload.Date,
		Status:         StatusServer,
		ServerResponse: &row,
	}
}

// Payload maps a record to the wire shape the API expects. The full_name
// to name rename happens only here.
func (r BookingRecord) Payload() BookingPayload {
	return BookingPayload{
		Name:    r.FullName,
		Email:   r.Email,
		Service: r.Service,
		Date:    r.Date,
	}
}
