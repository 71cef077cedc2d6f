package stats

import "time"

const dayKeyLayout = "2006-01-02"

// Range is an inclusive calendar-day range. A zero bound is open on that
// side, so the zero Range matches every day.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a range covering the calendar days of from through to.
func NewRange(from, to time.Time) Range {
	return Range{From: from, To: to}
}

// Valid reports whether both bounds are set and ordered by calendar day.
func (r Range) Valid() bool {
	if r.From.IsZero() || r.To.IsZero() {
		return false
	}
	return dayKey(r.To) >= dayKey(r.From)
}

// ContainsDay reports whether t's calendar day falls within the range.
func (r Range) ContainsDay(t time.Time) bool {
	k := dayKey(t)
	if !r.From.IsZero() && k < dayKey(r.From) {
		return false
	}
	if !r.To.IsZero() && k > dayKey(r.To) {
		return false
	}
	return true
}

// Days returns the number of calendar days the range covers, inclusive on
// both ends. Zero for an invalid range.
func (r Range) Days() int {
	if !r.Valid() {
		return 0
	}
	from := asUTCDate(r.From)
	to := asUTCDate(r.To)
	return int(to.Sub(from).Hours()/24) + 1
}

// DayOf returns midnight of t's calendar day, in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey is the calendar-day identity used for all day comparisons, so
// days booked under different UTC offsets compare by their local date.
func dayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// asUTCDate re-anchors t's calendar date at midnight UTC. Date arithmetic
// on these values is exact regardless of the source offset or DST.
func asUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
