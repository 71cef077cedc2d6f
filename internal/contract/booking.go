package contract

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// DefaultUserID is used when a request does not name a user.
const DefaultUserID = "default"

type StartRequest struct {
	ProjectID string
	UserID    string
	Tags      []string
	Note      string
	Now       *time.Time
}

func NewStartRequest(projectID string) StartRequest {
	return StartRequest{
		ProjectID: projectID,
		UserID:    DefaultUserID,
	}
}

type StartResponse struct {
	Booking *domain.Booking
}

type FinishRequest struct {
	UserID string
	Note   string
	Now    *time.Time
}

func NewFinishRequest() FinishRequest {
	return FinishRequest{UserID: DefaultUserID}
}

type FinishResponse struct {
	Booking *domain.Booking
	Hours   float64
}

type ListRequest struct {
	From      time.Time
	To        time.Time
	ProjectID string
	Now       *time.Time
}

type ListResponse struct {
	Bookings []*domain.Booking
}

type BookingErrorCode string

const (
	ErrAlreadyRunning BookingErrorCode = "ALREADY_RUNNING"
	ErrNothingRunning BookingErrorCode = "NOTHING_RUNNING"
	ErrInvalidProject BookingErrorCode = "INVALID_PROJECT"
	ErrInvalidRange   BookingErrorCode = "INVALID_RANGE"
	ErrInternal       BookingErrorCode = "INTERNAL_ERROR"
)

type BookingError struct {
	Code    BookingErrorCode
	Message string
}

func (e *BookingError) Error() string {
	return string(e.Code) + ": " + e.Message
}
