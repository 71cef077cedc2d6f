package contract

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/stats"
)

type DashboardRequest struct {
	From   time.Time
	To     time.Time
	UserID string
	Now    *time.Time
}

// NewDashboardRequest covers the current ISO week (Monday through Sunday)
// around now when From/To are left zero; the service fills them in.
func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{UserID: DefaultUserID}
}

type RunningView struct {
	Booking *domain.Booking
	Elapsed float64
}

type DashboardResponse struct {
	Range      stats.Range
	Total      stats.Summary
	PerProject map[string]stats.Summary
	PerTag     map[string]stats.Summary
	PerDay     map[string]stats.Summary
	Planned    float64
	Progress   stats.Progress
	Running    *RunningView
}

type DashboardErrorCode string

const (
	DashboardErrInvalidRange DashboardErrorCode = "INVALID_RANGE"
	DashboardErrInternal     DashboardErrorCode = "INTERNAL_ERROR"
)

type DashboardError struct {
	Code    DashboardErrorCode
	Message string
}

func (e *DashboardError) Error() string {
	return string(e.Code) + ": " + e.Message
}
