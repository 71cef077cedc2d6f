package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avoigt/timebook/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// GetRunning returns the user's running booking, ErrNotFound if none.
	GetRunning(ctx context.Context, userID string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// ListOverlapping returns bookings whose interval overlaps [from, to],
	// including running bookings that started before to.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type PlannedHoursRepo interface {
	Get(ctx context.Context) (domain.PlannedHours, error)
	Set(ctx context.Context, p domain.PlannedHours) error
}
