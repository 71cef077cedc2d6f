package stats

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// Hours returns the booking's elapsed duration in unrounded decimal hours.
// Running bookings are measured against asOf; that parameter is the only
// place wall-clock time enters the package. Spans that would be negative
// clamp to zero. Callers round for display only, so aggregation never
// compounds rounding error.
func Hours(b domain.Booking, asOf time.Time) float64 {
	end := asOf
	if b.End != nil {
		end = *b.End
	}
	h := end.Sub(b.Start).Hours()
	if h < 0 {
		return 0
	}
	return h
}
