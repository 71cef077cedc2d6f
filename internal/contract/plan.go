package contract

import "github.com/avoigt/timebook/internal/domain"

type PlanRequest struct {
	Hours domain.PlannedHours
}

type PlanResponse struct {
	Hours     domain.PlannedHours
	WeekTotal float64
}

type PlanErrorCode string

const (
	PlanErrInvalidHours PlanErrorCode = "INVALID_HOURS"
	PlanErrInternal     PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
