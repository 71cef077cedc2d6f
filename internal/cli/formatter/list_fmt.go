package formatter

import (
	"fmt"
	"strings"

	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/stats"
)

// FormatBookings renders bookings as one line each, oldest first.
func FormatBookings(bookings []*domain.Booking) string {
	if len(bookings) == 0 {
		return StyleDim.Render("No bookings in range.") + "\n"
	}

	var b strings.Builder
	for _, bk := range bookings {
		b.WriteString(formatBookingLine(bk))
		b.WriteString("\n")
	}
	return b.String()
}

func formatBookingLine(b *domain.Booking) string {
	day := b.Start.Format("2006-01-02")
	span := b.Start.Format("15:04")
	var dur string
	if b.End != nil {
		span += "-" + b.End.Format("15:04")
		dur = FormatHours(stats.Hours(*b, b.Start))
	} else {
		span += "-     "
		dur = StyleGreen.Render("running")
	}

	line := fmt.Sprintf("%s  %s  %7s  %s",
		StyleDim.Render(day), span, dur, StyleBlue.Render(b.ProjectID))
	if len(b.Tags) > 0 {
		line += "  " + StylePurple.Render("#"+strings.Join(b.Tags, " #"))
	}
	if b.Note != "" {
		line += "  " + StyleDim.Render(b.Note)
	}
	return line
}
