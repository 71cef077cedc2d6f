package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/avoigt/timebook/internal/contract"
)

// planDayOrder lists weekdays Monday-first for display.
var planDayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// FormatPlan renders the weekly planned hours.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder
	for _, d := range planDayOrder {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			padRight(StyleBlue.Render(d.String()), 9),
			FormatHours(resp.Hours[d])))
	}
	b.WriteString(fmt.Sprintf("\n%s  %s/week",
		StyleBold.Render("Total"), FormatHours(resp.WeekTotal)))
	return RenderBox("Planned hours", b.String()) + "\n"
}
