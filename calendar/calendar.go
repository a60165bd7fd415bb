// Package calendar derives the month grid shown behind the reservation
// form. Values here are ephemeral: rebuilt on every navigation, never
// persisted.
package calendar

import (
	"time"

	"bookbrick/model"
)

// GridSize is the fixed cell count of the month view: 6 rows of 7 days,
// Sunday first. The grid always covers the whole target month and pads
// with adjacent-month days on both ends.
const GridSize = 42

// Day is one grid cell.
type Day struct {
	Date          time.Time
	InMonth       bool
	Today         bool
	Selected      bool
	ReservedCount int
}

// ISO returns the cell's date as YYYY-MM-DD.
func (d Day) ISO() string {
	return d.Date.Format("2006-01-02")
}

// BuildGrid returns the 42 cells for the given month. The first cell is
// the Sunday on or before the 1st. today and selected are ISO dates used
// to set the matching flags; reserved maps ISO dates to booking counts.
func BuildGrid(year int, month time.Month, today, selected string, reserved map[string]int) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		iso := date.Format("2006-01-02")
		days = append(days, Day{
			Date:          date,
			InMonth:       date.Month() == month,
			Today:         iso == today,
			Selected:      iso == selected,
			ReservedCount: reserved[iso],
		})
	}
	return days
}

// CountByDate tallies reservations per ISO date, local and server records
// alike.
func CountByDate(records []model.BookingRecord) map[string]int {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Date]++
	}
	return counts
}

// PrevMonth steps one month back, wrapping January into the previous
// December.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps one month forward, wrapping December into the next
// January.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
