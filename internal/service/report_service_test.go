package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/stats"
	"github.com/avoigt/timebook/internal/testutil"
)

func TestGetReport_ResolvesDailyForShortRange(t *testing.T) {
	bookings, _, _ := setupRepos(t)
	svc := NewReportService(bookings)
	ctx := context.Background()

	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.Create(ctx, testutil.NewTestBooking(start,
		testutil.WithDuration(2*time.Hour))))

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	req := contract.NewReportRequest(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC))
	req.Now = &now

	resp, err := svc.GetReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, stats.GranularityDay, resp.Granularity)
	require.Len(t, resp.Points, 7, "one bucket per day, empty days included")
	assert.InDelta(t, 2.0, resp.Points[2].Hours, 1e-9)
	assert.Equal(t, "2024-06-03", resp.Points[2].Label)
	assert.InDelta(t, 2.0, resp.Total.Hours, 1e-9)
}

func TestGetReport_GranularityOverride(t *testing.T) {
	bookings, _, _ := setupRepos(t)
	svc := NewReportService(bookings)

	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	req := contract.NewReportRequest(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC))
	req.Granularity = stats.GranularityWeek
	req.Now = &now

	resp, err := svc.GetReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, stats.GranularityWeek, resp.Granularity)
	// June 1 2024 is a Saturday, so its week bucket starts Monday May 27
	require.Len(t, resp.Points, 2)
	assert.Equal(t, "2024-05-27", resp.Points[0].Label)
}

func TestGetReport_InvalidGranularity(t *testing.T) {
	bookings, _, _ := setupRepos(t)
	svc := NewReportService(bookings)

	req := contract.NewReportRequest(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC))
	req.Granularity = "fortnight"

	_, err := svc.GetReport(context.Background(), req)
	var rErr *contract.ReportError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, contract.ReportErrInvalidGranularity, rErr.Code)
}

func TestGetReport_InvalidRange(t *testing.T) {
	bookings, _, _ := setupRepos(t)
	svc := NewReportService(bookings)

	req := contract.NewReportRequest(
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.GetReport(context.Background(), req)
	var rErr *contract.ReportError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, contract.ReportErrInvalidRange, rErr.Code)
}

func TestGetReport_YearRangeResolvesWeekly(t *testing.T) {
	bookings, _, _ := setupRepos(t)
	svc := NewReportService(bookings)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	req := contract.NewReportRequest(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	req.Now = &now

	resp, err := svc.GetReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, stats.GranularityWeek, resp.Granularity)
	assert.LessOrEqual(t, len(resp.Points), 54)
	assert.GreaterOrEqual(t, len(resp.Points), 52)
}
