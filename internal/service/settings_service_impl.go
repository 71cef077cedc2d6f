package service

import (
	"context"
	"time"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/repository"
)

type settingsService struct {
	planned  repository.PlannedHoursRepo
	observer UseCaseObserver
}

func NewSettingsService(planned repository.PlannedHoursRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		planned:  planned,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) GetPlan(ctx context.Context) (*contract.PlanResponse, error) {
	p, err := s.planned.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.PlanResponse{Hours: p, WeekTotal: p.WeekTotal()}, nil
}

func (s *settingsService) SetPlan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if validErr := req.Hours.Validate(); validErr != nil {
		return nil, &contract.PlanError{Code: contract.PlanErrInvalidHours, Message: validErr.Error()}
	}
	if err = s.planned.Set(ctx, req.Hours); err != nil {
		return nil, err
	}
	return &contract.PlanResponse{Hours: req.Hours, WeekTotal: req.Hours.WeekTotal()}, nil
}
