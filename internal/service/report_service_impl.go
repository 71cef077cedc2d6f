package service

import (
	"context"
	"time"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/stats"
)

type reportService struct {
	bookings repository.BookingRepo
	observer UseCaseObserver
}

func NewReportService(bookings repository.BookingRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		bookings: bookings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) GetReport(ctx context.Context, req contract.ReportRequest) (resp *contract.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"granularity": string(req.Granularity)},
		})
	}()

	now := resolveNow(req.Now)
	r := stats.NewRange(req.From, req.To)
	if !r.Valid() {
		return nil, &contract.ReportError{Code: contract.ReportErrInvalidRange, Message: "report range must have an ordered start and end"}
	}

	g := req.Granularity
	if g == "" {
		g = stats.Resolve(r)
	} else if _, parseErr := stats.ParseGranularity(string(g)); parseErr != nil {
		return nil, &contract.ReportError{Code: contract.ReportErrInvalidGranularity, Message: parseErr.Error()}
	}

	qFrom, qTo := queryBounds(r)
	rows, err := s.bookings.ListOverlapping(ctx, qFrom, qTo)
	if err != nil {
		return nil, err
	}
	bookings := toValues(rows)

	return &contract.ReportResponse{
		Range:       r,
		Granularity: g,
		Points:      stats.Bucketize(bookings, r, g, now),
		Total:       stats.Summarize(bookings, r, now),
	}, nil
}
