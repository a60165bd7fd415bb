package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"bookbrick/model"
)

// DB is the process-wide handle to the bookings table. Set once by Init
// (or by tests) before the handlers run.
var DB *sql.DB

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		service TEXT NOT NULL,
		date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`

// Init opens the SQLite database at path and makes sure the bookings
// table exists.
func Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("cannot open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database is not available: %w", err)
	}
	if _, err := db.Exec(createTableQuery); err != nil {
		return fmt.Errorf("cannot ensure bookings table: %w", err)
	}
	DB = db
	return nil
}

// InsertBooking stores one booking and returns the persisted row.
func InsertBooking(payload model.BookingPayload) (model.ServerBooking, error) {
	createdAt := time.Now().Format(time.RFC3339)
	res, err := DB.Exec(
		`INSERT INTO bookings (name, email, service, date, created_at) VALUES (?, ?, ?, ?, ?)`,
		payload.Name, payload.Email, payload.Service, payload.Date, createdAt)
	if err != nil {
		return model.ServerBooking{}, fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ServerBooking{}, fmt.Errorf("insert booking: %w", err)
	}
	return model.ServerBooking{
		ID:        id,
		Name:      payload.Name,
		Email:     payload.Email,
		Service:   payload.Service,
		Date:      payload.Date,
		CreatedAt: createdAt,
	}, nil
}

// GetBookings returns all rows, newest first.
func GetBookings() ([]model.ServerBooking, error) {
	rows, err := DB.Query(
		`SELECT id, name, email, service, date, created_at FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []model.ServerBooking{}
	for rows.Next() {
		var b model.ServerBooking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Service, &b.Date, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	return bookings, nil
}

// DeleteBooking removes the row with the given id. It reports whether a
// row was actually deleted.
func DeleteBooking(id int64) (bool, error) {
	res, err := DB.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	return n > 0, nil
}
