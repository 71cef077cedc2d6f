package stats

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// Point is one bucket of a chart series.
type Point struct {
	Start time.Time
	Label string
	Hours float64
	Count int
}

// Bucketize groups bookings into a dense, ascending series of buckets at
// the given granularity. The full list of bucket boundaries spanning the
// range is generated before any data is placed, so buckets with no
// bookings appear with zero values instead of being dropped. Output order
// does not depend on input order. An invalid range yields no points.
func Bucketize(bookings []domain.Booking, r Range, g Granularity, asOf time.Time) []Point {
	if !r.Valid() {
		return nil
	}

	starts := bucketStarts(r, g)
	points := make([]Point, len(starts))
	index := make(map[string]int, len(starts))
	for i, s := range starts {
		points[i] = Point{Start: s, Label: bucketLabel(s, g)}
		index[dayKey(s)] = i
	}

	seen := make([]map[string]bool, len(starts))
	for _, b := range bookings {
		for _, f := range Split(b, asOf) {
			if !r.ContainsDay(f.Day) {
				continue
			}
			i, ok := index[dayKey(bucketStart(f.Day, g, r))]
			if !ok {
				continue
			}
			points[i].Hours += f.Hours()
			if seen[i] == nil {
				seen[i] = make(map[string]bool)
			}
			if !seen[i][f.BookingID] {
				seen[i][f.BookingID] = true
				points[i].Count++
			}
		}
	}
	return points
}

// bucketStarts generates every bucket boundary covering the range, in
// ascending order. Week buckets start on Monday, month buckets on the
// first of the month, so the leading bucket may begin before the range.
func bucketStarts(r Range, g Granularity) []time.Time {
	from := asUTCDate(r.From)
	to := asUTCDate(r.To)

	var starts []time.Time
	switch g {
	case GranularityAll:
		starts = append(starts, from)
	case GranularityWeek:
		for cur := weekStart(from); !cur.After(to); cur = cur.AddDate(0, 0, 7) {
			starts = append(starts, cur)
		}
	case GranularityMonth:
		for cur := monthStart(from); !cur.After(to); cur = cur.AddDate(0, 1, 0) {
			starts = append(starts, cur)
		}
	default:
		for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
			starts = append(starts, cur)
		}
	}
	return starts
}

// bucketStart maps a fragment's calendar day to its bucket boundary.
func bucketStart(day time.Time, g Granularity, r Range) time.Time {
	d := asUTCDate(day)
	switch g {
	case GranularityAll:
		return asUTCDate(r.From)
	case GranularityWeek:
		return weekStart(d)
	case GranularityMonth:
		return monthStart(d)
	default:
		return d
	}
}

// weekStart returns the Monday of d's ISO week.
func weekStart(d time.Time) time.Time {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}

func monthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func bucketLabel(s time.Time, g Granularity) string {
	switch g {
	case GranularityMonth:
		return s.Format("2006-01")
	case GranularityAll:
		return "all"
	default:
		return s.Format(dayKeyLayout)
	}
}
