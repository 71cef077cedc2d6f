package stats

import (
	"github.com/avoigt/timebook/internal/domain"
)

// Progress pairs the unclamped fulfillment percentage with a value clamped
// to [0,100] for rendering a bounded bar. FulfilledPct above 100 shows
// overtime.
type Progress struct {
	FulfilledPct float64
	BarPct       float64
}

// Fulfillment compares actual booked hours against a planned target.
// A planned target of zero (no plan set) yields exactly zero, never NaN or
// Inf. Negative actual hours clamp to zero before the division so neither
// output can go negative.
func Fulfillment(actualHours, plannedHours float64) Progress {
	if actualHours < 0 {
		actualHours = 0
	}
	if plannedHours <= 0 {
		return Progress{}
	}
	pct := actualHours / plannedHours * 100
	bar := pct
	if bar > 100 {
		bar = 100
	}
	return Progress{FulfilledPct: pct, BarPct: bar}
}

// PlannedInRange sums the weekday plan over every calendar day the range
// covers. Invalid ranges yield zero.
func PlannedInRange(p domain.PlannedHours, r Range) float64 {
	days := r.Days()
	if days <= 0 {
		return 0
	}
	start := asUTCDate(r.From)
	var total float64
	for i := 0; i < days; i++ {
		total += p[start.AddDate(0, 0, i).Weekday()]
	}
	return total
}
