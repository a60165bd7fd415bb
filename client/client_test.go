package client_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"bookbrick/client"
	"bookbrick/localstore"
	"bookbrick/model"
)

// fakeAPI records every create call and fails while createErr is set.
// When failAfter is positive, that many creates succeed and the rest fail.
type fakeAPI struct {
	createErr error
	failAfter int
	successes int
	creates   []model.BookingPayload
	nextID    int64
}

func (f *fakeAPI) CreateBooking(ctx context.Context, p model.BookingPayload) (model.ServerBooking, error) {
	f.creates = append(f.creates, p)
	if f.failAfter > 0 && f.successes >= f.failAfter {
		return model.ServerBooking{}, errors.New("network down")
	}
	if f.createErr != nil {
		return model.ServerBooking{}, f.createErr
	}
	f.successes++
	f.nextID++
	return model.ServerBooking{
		ID:        f.nextID,
		Name:      p.Name,
		Email:     p.Email,
		Service:   p.Service,
		Date:      p.Date,
		CreatedAt: "2025-06-01T00:00:00Z",
	}, nil
}

func (f *fakeAPI) ListBookings(ctx context.Context) ([]model.ServerBooking, error) {
	return []model.ServerBooking{}, nil
}

func (f *fakeAPI) DeleteBooking(ctx context.Context, id int64) error {
	return nil
}

func newTestSession(t *testing.T, api client.API) (*client.Session, *localstore.Store) {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "bookings.json"))
	return client.NewSession(api, store), store
}

func storeFile(store *localstore.Store) string {
	return store.Path()
}
