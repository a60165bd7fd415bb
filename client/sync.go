package client

import (
	"context"
	"log"

	"bookbrick/model"
)

// SyncResult reports exactly what a sync pass did: which queued bookings
// were confirmed by the server and which are still pending, including any
// that were never attempted because the pass aborted early.
type SyncResult struct {
	Synced    []model.BookingRecord
	Remaining []model.BookingRecord
}

// SyncPending replays queued local bookings through the API, in stored
// order (newest queued first). The pass stops at the first failure: one
// failed call is taken as a sign that connectivity is still down, so the
// remaining items are left for the next trigger rather than burned
// through. The snapshot is persisted once at the end of the pass.
func (s *Session) SyncPending(ctx context.Context) (SyncResult, error) {
	pending := []model.BookingRecord{}
	for _, r := range s.reservations {
		if r.Status == model.StatusLocal {
			pending = append(pending, r)
		}
	}
	if len(pending) == 0 {
		return SyncResult{}, nil
	}

	result := SyncResult{}
	for _, item := range pending {
		payload := item.Payload()
		row, err := s.api.CreateBooking(ctx, payload)
		if err != nil {
			log.Printf("sync failed for booking %s, stopping pass: %v", item.ID, err)
			break
		}

		s.removeInMemory(item.ID)
		confirmed := model.NewServerRecord(payload, row)
		s.reservations = append([]model.BookingRecord{confirmed}, s.reservations...)
		result.Synced = append(result.Synced, confirmed)
	}

	for _, r := range s.reservations {
		if r.Status == model.StatusLocal {
			result.Remaining = append(result.Remaining, r)
		}
	}

	if err := s.persist(); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Session) removeInMemory(id string) {
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reservations = kept
}
