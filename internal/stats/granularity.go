package stats

import "fmt"

// Granularity is the bucket width used to build a time series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityAll   Granularity = "all"
)

// Range-length ceilings per granularity, in days: a month of day buckets,
// a year of week buckets, five years of month buckets. Longer ranges
// collapse to a single bucket. The resulting series always has between 1
// and 62 points.
const (
	maxDayRangeDays   = 31
	maxWeekRangeDays  = 366
	maxMonthRangeDays = 1830
)

// Resolve picks the coarsest granularity that keeps the series scannable
// for the given range. It is a pure function of the range length; invalid
// ranges resolve to day.
func Resolve(r Range) Granularity {
	days := r.Days()
	switch {
	case days <= maxDayRangeDays:
		return GranularityDay
	case days <= maxWeekRangeDays:
		return GranularityWeek
	case days <= maxMonthRangeDays:
		return GranularityMonth
	default:
		return GranularityAll
	}
}

// ParseGranularity converts a user-supplied string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityAll:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unknown granularity %q (want day, week, month or all)", s)
	}
}
