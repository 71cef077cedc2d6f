package service

import (
	"context"

	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/domain"
)

type BookingService interface {
	Start(ctx context.Context, req contract.StartRequest) (*contract.StartResponse, error)
	Finish(ctx context.Context, req contract.FinishRequest) (*contract.FinishResponse, error)
	// GetRunning returns the user's running booking, repository.ErrNotFound
	// if there is none.
	GetRunning(ctx context.Context, userID string) (*domain.Booking, error)
	List(ctx context.Context, req contract.ListRequest) (*contract.ListResponse, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type ReportService interface {
	GetReport(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
}

type SettingsService interface {
	GetPlan(ctx context.Context) (*contract.PlanResponse, error)
	SetPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}
