// Package localstore persists the client's reservation list as a single
// JSON snapshot, the durable fallback used when the API is unreachable.
package localstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"bookbrick/model"
)

// Store reads and writes whole snapshots of booking records at a fixed
// path. There is no partial update: LoadAll returns everything, SaveAll
// replaces everything.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns the persisted snapshot, newest first. A missing or
// malformed snapshot is treated as empty, never as a fatal error.
func (s *Store) LoadAll() []model.BookingRecord {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.BookingRecord{}
	}
	if err != nil {
		log.Printf("cannot read local store %s: %v", s.path, err)
		return []model.BookingRecord{}
	}

	var records []model.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("corrupt local store %s, starting empty: %v", s.path, err)
		return []model.BookingRecord{}
	}
	return records
}

// SaveAll overwrites the snapshot. The write goes to a temp file first
// and is moved into place, so a crash mid-write cannot corrupt the
// previous snapshot.
func (s *Store) SaveAll(records []model.BookingRecord) error {
	if records == nil {
		records = []model.BookingRecord{}
	}
	data, err := json.MarshalIndent(records, "", "	")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
