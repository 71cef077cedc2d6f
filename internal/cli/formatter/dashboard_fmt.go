package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/stats"
)

// FormatDashboard renders the dashboard response as a boxed overview.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(StyleDim.Render(FormatDayRange(resp.Range.From, resp.Range.To)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s across %d bookings\n",
		StyleBold.Render("Booked"), FormatHours(resp.Total.Hours), resp.Total.Count))
	if resp.Planned > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleBold.Render("Planned"), FormatHours(resp.Planned)))
		b.WriteString(RenderProgress(resp.Progress.FulfilledPct, 24))
		b.WriteString("\n")
	} else {
		b.WriteString(StyleDim.Render("No planned hours set (timebook plan)"))
		b.WriteString("\n")
	}

	if resp.Running != nil {
		b.WriteString(fmt.Sprintf("\n%s %s on %s\n",
			StyleGreen.Render("● running"),
			FormatHours(resp.Running.Elapsed),
			StyleBlue.Render(resp.Running.Booking.ProjectID)))
	}

	if len(resp.PerProject) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("BY PROJECT"))
		b.WriteString("\n")
		b.WriteString(summaryTable(resp.PerProject))
	}
	if len(resp.PerTag) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("BY TAG"))
		b.WriteString("\n")
		b.WriteString(summaryTable(resp.PerTag))
	}
	if len(resp.PerDay) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("BY DAY"))
		b.WriteString("\n")
		b.WriteString(summaryTable(resp.PerDay))
	}

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n")) + "\n"
}

// summaryTable renders key/summary pairs sorted by key, one per line.
func summaryTable(m map[string]stats.Summary) string {
	keys := make([]string, 0, len(m))
	keyWidth := 0
	for k := range m {
		keys = append(keys, k)
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		s := m[k]
		b.WriteString(fmt.Sprintf("  %s  %7s  %s\n",
			padRight(StyleBlue.Render(k), keyWidth),
			FormatHours(s.Hours),
			StyleDim.Render(fmt.Sprintf("(%d)", s.Count))))
	}
	return b.String()
}
