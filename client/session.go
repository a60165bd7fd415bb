// Package client implements the booking client core: the reservation
// session, the submission flow with its offline fallback, and the sync
// engine that replays queued bookings once the API is reachable again.
package client

import (
	"bookbrick/localstore"
	"bookbrick/model"
)

// Session owns the canonical in-memory reservation list for one local
// profile, newest first. Every mutation is followed by a full snapshot
// save through the local store.
type Session struct {
	api   API
	store *localstore.Store

	reservations []model.BookingRecord
}

// NewSession loads the persisted snapshot and returns a session over it.
func NewSession(api API, store *localstore.Store) *Session {
	return &Session{
		api:          api,
		store:        store,
		reservations: store.LoadAll(),
	}
}

// Reservations returns a copy of the current list, newest first.
func (s *Session) Reservations() []model.BookingRecord {
	out := make([]model.BookingRecord, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// Prepend puts a new record at the head of the list and persists the
// snapshot.
func (s *Session) Prepend(rec model.BookingRecord) error {
	s.reservations = append([]model.BookingRecord{rec}, s.reservations...)
	return s.persist()
}

// RemoveByID drops the record with the given local id and persists the
// snapshot. Removing an unknown id is a no-op.
func (s *Session) RemoveByID(id string) error {
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reservations = kept
	return s.persist()
}

func (s *Session) persist() error {
	return s.store.SaveAll(s.reservations)
}
