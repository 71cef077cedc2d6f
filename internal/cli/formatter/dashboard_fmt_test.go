package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/stats"
)

func dashboardFixture() *contract.DashboardResponse {
	return &contract.DashboardResponse{
		Range: stats.NewRange(
			time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)),
		Total: stats.Summary{Hours: 5, Count: 2},
		PerProject: map[string]stats.Summary{
			"alpha": {Hours: 2, Count: 1},
			"beta":  {Hours: 3, Count: 1},
		},
		PerDay: map[string]stats.Summary{
			"2024-06-03": {Hours: 5, Count: 2},
		},
		Planned:  10,
		Progress: stats.Progress{FulfilledPct: 50, BarPct: 50},
	}
}

func TestFormatDashboard_ShowsTotalsAndProgress(t *testing.T) {
	out := FormatDashboard(dashboardFixture())

	assert.Contains(t, out, "2024-06-03 .. 2024-06-09")
	assert.Contains(t, out, "5h across 2 bookings")
	assert.Contains(t, out, "10h")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "BY PROJECT")
	assert.Contains(t, out, "BY DAY")
	assert.NotContains(t, out, "BY TAG", "empty tag section is omitted")
	assert.NotContains(t, out, "running")
}

func TestFormatDashboard_NoPlanHint(t *testing.T) {
	resp := dashboardFixture()
	resp.Planned = 0
	resp.Progress = stats.Progress{}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "No planned hours set")
	assert.NotContains(t, out, "%")
}

func TestFormatDashboard_RunningBooking(t *testing.T) {
	resp := dashboardFixture()
	resp.Running = &contract.RunningView{
		Booking: &domain.Booking{ID: "b1", ProjectID: "alpha"},
		Elapsed: 1.5,
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "1h30m")
}

func TestFormatBookings_Empty(t *testing.T) {
	out := FormatBookings(nil)
	assert.Contains(t, out, "No bookings in range.")
}

func TestFormatBookings_Lines(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	finished := &domain.Booking{
		ID: "b1", ProjectID: "alpha", Start: start, End: &end,
		Tags: []string{"focus"}, Note: "review",
	}
	running := &domain.Booking{ID: "b2", ProjectID: "beta", Start: start}

	out := FormatBookings([]*domain.Booking{finished, running})
	assert.Contains(t, out, "2024-06-03")
	assert.Contains(t, out, "09:00-10:30")
	assert.Contains(t, out, "1h30m")
	assert.Contains(t, out, "#focus")
	assert.Contains(t, out, "review")
	assert.Contains(t, out, "running")
}
