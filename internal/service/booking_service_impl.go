package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/db"
	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/stats"
)

type bookingService struct {
	bookings repository.BookingRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewBookingService(bookings repository.BookingRepo, uow db.UnitOfWork, observers ...UseCaseObserver) BookingService {
	return &bookingService{
		bookings: bookings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *bookingService) Start(ctx context.Context, req contract.StartRequest) (resp *contract.StartResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "start-booking",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"project": req.ProjectID},
		})
	}()

	if req.ProjectID == "" {
		return nil, &contract.BookingError{Code: contract.ErrInvalidProject, Message: "project id is required"}
	}
	userID := req.UserID
	if userID == "" {
		userID = contract.DefaultUserID
	}
	now := resolveNow(req.Now)

	if running, getErr := s.bookings.GetRunning(ctx, userID); getErr == nil {
		return nil, &contract.BookingError{
			Code:    contract.ErrAlreadyRunning,
			Message: "a booking for project " + running.ProjectID + " is already running",
		}
	} else if !errors.Is(getErr, repository.ErrNotFound) {
		return nil, getErr
	}

	b := &domain.Booking{
		ID:        uuid.New().String(),
		ProjectID: req.ProjectID,
		UserID:    userID,
		Start:     now,
		Tags:      req.Tags,
		Note:      req.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return &contract.StartResponse{Booking: b}, nil
}

func (s *bookingService) Finish(ctx context.Context, req contract.FinishRequest) (resp *contract.FinishResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "finish-booking",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	userID := req.UserID
	if userID == "" {
		userID = contract.DefaultUserID
	}
	now := resolveNow(req.Now)

	var finished *domain.Booking
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBookings := repository.NewSQLiteBookingRepo(tx)
		b, txErr := txBookings.GetRunning(ctx, userID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrNotFound) {
				return &contract.BookingError{Code: contract.ErrNothingRunning, Message: "no booking is running"}
			}
			return txErr
		}
		if txErr := b.Finish(now, now); txErr != nil {
			return txErr
		}
		if req.Note != "" {
			b.Note = req.Note
		}
		if txErr := txBookings.Update(ctx, b); txErr != nil {
			return txErr
		}
		finished = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contract.FinishResponse{
		Booking: finished,
		Hours:   stats.Hours(*finished, now),
	}, nil
}

func (s *bookingService) List(ctx context.Context, req contract.ListRequest) (resp *contract.ListResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-bookings",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	now := resolveNow(req.Now)
	from, to := req.From, req.To
	if from.IsZero() && to.IsZero() {
		// default to the last seven days
		to = now
		from = now.AddDate(0, 0, -6)
	}
	r := stats.NewRange(from, to)
	if !r.Valid() {
		return nil, &contract.BookingError{Code: contract.ErrInvalidRange, Message: "range end is before its start"}
	}

	var bookings []*domain.Booking
	if req.ProjectID != "" {
		bookings, err = s.bookings.ListByProject(ctx, req.ProjectID)
	} else {
		qFrom, qTo := queryBounds(r)
		bookings, err = s.bookings.ListOverlapping(ctx, qFrom, qTo)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !overlapsRange(b, r, now) {
			continue
		}
		out = append(out, b)
	}
	return &contract.ListResponse{Bookings: out}, nil
}

func (s *bookingService) GetRunning(ctx context.Context, userID string) (*domain.Booking, error) {
	if userID == "" {
		userID = contract.DefaultUserID
	}
	return s.bookings.GetRunning(ctx, userID)
}

func (s *bookingService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-booking",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"booking": id},
		})
	}()

	if _, err = s.bookings.GetByID(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

// overlapsRange reports whether any of the booking's day fragments fall
// inside the range. The padded storage query can return bookings whose
// local calendar days all sit outside it.
func overlapsRange(b *domain.Booking, r stats.Range, asOf time.Time) bool {
	for _, f := range stats.Split(*b, asOf) {
		if r.ContainsDay(f.Day) {
			return true
		}
	}
	return false
}
