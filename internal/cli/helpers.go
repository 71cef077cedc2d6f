package cli

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD flag value in the local timezone. An empty
// value yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseDateRange parses the from/to flag pair.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
