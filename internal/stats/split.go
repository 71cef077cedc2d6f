package stats

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// Fragment is a day-bounded piece of a booking. Start and End lie within a
// single calendar day; for the first piece of a midnight-crossing booking
// End is the following midnight. Day is midnight of the fragment's
// calendar day and carries the attribution for range filtering.
type Fragment struct {
	BookingID string
	Start     time.Time
	End       time.Time
	Day       time.Time
}

// Hours returns the fragment's duration in decimal hours, never negative.
func (f Fragment) Hours() float64 {
	h := f.End.Sub(f.Start).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// Split normalizes a booking into fragments that each lie within one
// calendar day. Running bookings are measured against asOf.
//
// The result is always one or two fragments. A booking nominally spanning
// more than two days is reduced to its first and last day; bookings are
// stopped and restarted daily, so longer spans are entry errors and the
// intermediate days are intentionally not materialized. An end before the
// start collapses to a single zero-duration fragment on the start's day.
func Split(b domain.Booking, asOf time.Time) []Fragment {
	start := b.Start
	end := asOf
	if b.End != nil {
		end = *b.End
	}
	if end.Before(start) {
		return []Fragment{{BookingID: b.ID, Start: start, End: start, Day: DayOf(start)}}
	}

	// Compare calendar days in the start's zone so a booking keeps a
	// single day reference frame.
	end = end.In(start.Location())
	if sameDay(start, end) {
		return []Fragment{{BookingID: b.ID, Start: start, End: end, Day: DayOf(start)}}
	}

	return []Fragment{
		{BookingID: b.ID, Start: start, End: DayOf(start).AddDate(0, 0, 1), Day: DayOf(start)},
		{BookingID: b.ID, Start: DayOf(end), End: end, Day: DayOf(end)},
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
