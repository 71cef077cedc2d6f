package stats

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// Summary is the rolled-up result over a set of bookings: total decimal
// hours and the number of distinct bookings that contributed.
type Summary struct {
	Hours float64
	Count int
}

// KeyFunc extracts the grouping keys a fragment's hours are attributed to.
// Returning multiple keys fans the fragment's full duration out to each of
// them (a booking with three tags adds its hours to all three buckets).
type KeyFunc func(b domain.Booking, f Fragment) []string

// Summarize reduces bookings over the range into a single Summary. Each
// booking is normalized into day fragments first; fragments whose day
// falls outside the range are skipped. A booking split across midnight
// counts once, not twice. Empty input yields the zero Summary.
func Summarize(bookings []domain.Booking, r Range, asOf time.Time) Summary {
	var s Summary
	seen := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		for _, f := range Split(b, asOf) {
			if !r.ContainsDay(f.Day) {
				continue
			}
			s.Hours += f.Hours()
			if !seen[f.BookingID] {
				seen[f.BookingID] = true
				s.Count++
			}
		}
	}
	return s
}

// SummarizeBy accumulates a Summary per grouping key. Counts are distinct
// booking ids per key, so a midnight-split booking still counts once
// within each of its keys.
func SummarizeBy(bookings []domain.Booking, r Range, asOf time.Time, key KeyFunc) map[string]Summary {
	out := make(map[string]Summary)
	seen := make(map[string]map[string]bool)
	for _, b := range bookings {
		for _, f := range Split(b, asOf) {
			if !r.ContainsDay(f.Day) {
				continue
			}
			for _, k := range key(b, f) {
				s := out[k]
				s.Hours += f.Hours()
				if seen[k] == nil {
					seen[k] = make(map[string]bool)
				}
				if !seen[k][f.BookingID] {
					seen[k][f.BookingID] = true
					s.Count++
				}
				out[k] = s
			}
		}
	}
	return out
}

// ByProject groups by the booking's project id.
func ByProject(b domain.Booking, _ Fragment) []string {
	return []string{b.ProjectID}
}

// ByUser groups by the booking's user id.
func ByUser(b domain.Booking, _ Fragment) []string {
	return []string{b.UserID}
}

// ByDay groups by the fragment's calendar day (YYYY-MM-DD).
func ByDay(_ domain.Booking, f Fragment) []string {
	return []string{dayKey(f.Day)}
}

// ByTag fans the fragment out to every tag on the booking. Untagged
// bookings contribute to no bucket.
func ByTag(b domain.Booking, _ Fragment) []string {
	return b.Tags
}
