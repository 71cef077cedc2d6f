package service

import (
	"context"
	"errors"
	"time"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/stats"
)

type dashboardService struct {
	bookings repository.BookingRepo
	planned  repository.PlannedHoursRepo
	observer UseCaseObserver
}

func NewDashboardService(bookings repository.BookingRepo, planned repository.PlannedHoursRepo, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		bookings: bookings,
		planned:  planned,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	now := resolveNow(req.Now)
	userID := req.UserID
	if userID == "" {
		userID = contract.DefaultUserID
	}

	from, to := req.From, req.To
	if from.IsZero() && to.IsZero() {
		from, to = weekRange(now)
	}
	r := stats.NewRange(from, to)
	if !r.Valid() {
		return nil, &contract.DashboardError{Code: contract.DashboardErrInvalidRange, Message: "range end is before its start"}
	}

	qFrom, qTo := queryBounds(r)
	rows, err := s.bookings.ListOverlapping(ctx, qFrom, qTo)
	if err != nil {
		return nil, err
	}
	bookings := toValues(rows)

	plan, err := s.planned.Get(ctx)
	if err != nil {
		return nil, err
	}

	total := stats.Summarize(bookings, r, now)
	plannedHours := stats.PlannedInRange(plan, r)

	resp = &contract.DashboardResponse{
		Range:      r,
		Total:      total,
		PerProject: stats.SummarizeBy(bookings, r, now, stats.ByProject),
		PerTag:     stats.SummarizeBy(bookings, r, now, stats.ByTag),
		PerDay:     stats.SummarizeBy(bookings, r, now, stats.ByDay),
		Planned:    plannedHours,
		Progress:   stats.Fulfillment(total.Hours, plannedHours),
	}

	running, err := s.bookings.GetRunning(ctx, userID)
	switch {
	case err == nil:
		resp.Running = &contract.RunningView{
			Booking: running,
			Elapsed: stats.Hours(*running, now),
		}
	case errors.Is(err, repository.ErrNotFound):
		err = nil
	default:
		return nil, err
	}
	return resp, nil
}
