package model

// BookingPayload is the request body for POST /api/bookings.
type BookingPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
}

// ServerBooking is one persisted row of the bookings table.
type ServerBooking struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}
