package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/stats"
)

func TestFormatReport_ListsEveryBucket(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}
	resp := &contract.ReportResponse{
		Range:       stats.NewRange(day(1), day(3)),
		Granularity: stats.GranularityDay,
		Points: []stats.Point{
			{Start: day(1), Label: "2024-06-01", Hours: 2, Count: 1},
			{Start: day(2), Label: "2024-06-02"},
			{Start: day(3), Label: "2024-06-03", Hours: 1.5, Count: 2},
		},
		Total: stats.Summary{Hours: 3.5, Count: 3},
	}

	out := FormatReport(resp)
	assert.Contains(t, out, "granularity: day")
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "2024-06-02", "zero bucket still listed")
	assert.Contains(t, out, "2024-06-03")
	assert.Contains(t, out, "3h30m across 3 bookings")
}

func TestFormatPlan_MondayFirst(t *testing.T) {
	plan := domain.DefaultPlannedHours()
	plan[time.Monday] = 8

	resp := &contract.PlanResponse{Hours: plan, WeekTotal: 8}
	out := FormatPlan(resp)

	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Sunday")
	assert.Less(t, strings.Index(out, "Monday"), strings.Index(out, "Sunday"))
	assert.Contains(t, out, "8h/week")
}
