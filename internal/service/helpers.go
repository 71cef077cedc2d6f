package service

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/stats"
)

// resolveNow returns the request's pinned clock, falling back to the wall
// clock. Pinning keeps service output reproducible in tests.
func resolveNow(pinned *time.Time) time.Time {
	if pinned != nil {
		return *pinned
	}
	return time.Now().UTC()
}

// weekRange returns the Monday through Sunday of now's ISO week.
func weekRange(now time.Time) (time.Time, time.Time) {
	day := stats.DayOf(now)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := day.AddDate(0, 0, -(wd - 1))
	return monday, monday.AddDate(0, 0, 6)
}

// queryBounds widens a day range by one day on each side for the storage
// query. Bookings recorded under a different UTC offset can sit just
// outside the naive bounds; the stats layer filters by local calendar day
// afterwards.
func queryBounds(r stats.Range) (time.Time, time.Time) {
	from := stats.DayOf(r.From).AddDate(0, 0, -1)
	to := stats.DayOf(r.To).AddDate(0, 0, 2)
	return from, to
}

func toValues(bookings []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = *b
	}
	return out
}
