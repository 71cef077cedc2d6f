package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders decimal hours as "2h30m". Sub-minute amounts round
// to the nearest minute; exactly zero renders as "0m".
func FormatHours(hours float64) string {
	totalMin := int(math.Round(hours * 60))
	if totalMin <= 0 {
		return "0m"
	}
	h := totalMin / 60
	m := totalMin % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// FormatDayRange renders an inclusive day range like "2024-06-03 .. 2024-06-09".
func FormatDayRange(from, to time.Time) string {
	return from.Format("2006-01-02") + " .. " + to.Format("2006-01-02")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
