package domain

import (
	"fmt"
	"time"
)

// PlannedHours maps each weekday to the planned working hours for that day.
// All seven weekdays must be present; days without a plan carry 0.
type PlannedHours map[time.Weekday]float64

// DefaultPlannedHours returns a complete plan with zero hours on every day.
func DefaultPlannedHours() PlannedHours {
	p := make(PlannedHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		p[d] = 0
	}
	return p
}

// Validate checks that every weekday is present with a non-negative value.
// A missing day is a data contract violation, not an implicit zero.
func (p PlannedHours) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		v, ok := p[d]
		if !ok {
			return fmt.Errorf("planned hours missing weekday %s", d)
		}
		if v < 0 {
			return fmt.Errorf("planned hours for %s is negative: %v", d, v)
		}
	}
	return nil
}

// WeekTotal returns the planned hours summed over a full week.
func (p PlannedHours) WeekTotal() float64 {
	var total float64
	for _, v := range p {
		total += v
	}
	return total
}
