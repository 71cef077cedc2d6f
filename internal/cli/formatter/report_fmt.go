package formatter

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoigt/timebook/internal/contract"
)

const (
	chartWidth  = 64
	chartHeight = 12
)

// FormatReport renders the report response as a bar chart over the bucket
// series, one bar per bucket, empty buckets included so gaps stay visible.
func FormatReport(resp *contract.ReportResponse) string {
	var b strings.Builder

	b.WriteString(StyleDim.Render(fmt.Sprintf("%s  granularity: %s",
		FormatDayRange(resp.Range.From, resp.Range.To), resp.Granularity)))
	b.WriteString("\n\n")

	chart := barchart.New(chartWidth, chartHeight)
	barStyle := lipgloss.NewStyle().Foreground(ColorBlue)
	zeroStyle := lipgloss.NewStyle().Foreground(ColorDim)
	for _, p := range resp.Points {
		style := barStyle
		if p.Hours == 0 {
			style = zeroStyle
		}
		chart.Push(barchart.BarData{
			Label: p.Label,
			Values: []barchart.BarValue{
				{Name: p.Label, Value: p.Hours, Style: style},
			},
		})
	}
	chart.Draw()
	b.WriteString(chart.View())
	b.WriteString("\n\n")

	for _, p := range resp.Points {
		b.WriteString(fmt.Sprintf("  %s  %7s  %s\n",
			padRight(StyleBlue.Render(p.Label), 10),
			FormatHours(p.Hours),
			StyleDim.Render(fmt.Sprintf("(%d)", p.Count))))
	}
	b.WriteString(fmt.Sprintf("\n%s  %s across %d bookings\n",
		StyleBold.Render("Total"), FormatHours(resp.Total.Hours), resp.Total.Count))

	return RenderBox("Report", strings.TrimRight(b.String(), "\n")) + "\n"
}
