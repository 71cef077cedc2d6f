package testutil

import (
	"time"

	"github.com/avoigt/timebook/internal/domain"
	"github.com/google/uuid"
)

// Booking options
type BookingOption func(*domain.Booking)

func WithEnd(end time.Time) BookingOption {
	return func(b *domain.Booking) {
		b.End = &end
	}
}

func WithDuration(d time.Duration) BookingOption {
	return func(b *domain.Booking) {
		end := b.Start.Add(d)
		b.End = &end
	}
}

func WithProject(projectID string) BookingOption {
	return func(b *domain.Booking) {
		b.ProjectID = projectID
	}
}

func WithUser(userID string) BookingOption {
	return func(b *domain.Booking) {
		b.UserID = userID
	}
}

func WithTags(tags ...string) BookingOption {
	return func(b *domain.Booking) {
		b.Tags = tags
	}
}

func WithNote(note string) BookingOption {
	return func(b *domain.Booking) {
		b.Note = note
	}
}

// NewTestBooking builds a running booking starting at start; add WithEnd
// or WithDuration to close it.
func NewTestBooking(start time.Time, opts ...BookingOption) *domain.Booking {
	now := time.Now().UTC()
	b := &domain.Booking{
		ID:        uuid.New().String(),
		ProjectID: "proj-test",
		UserID:    "default",
		Start:     start,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewTestPlan builds a complete planned-hours map with the given hours on
// Monday through Friday and zero on the weekend.
func NewTestPlan(weekdayHours float64) domain.PlannedHours {
	p := domain.DefaultPlannedHours()
	for d := time.Monday; d <= time.Friday; d++ {
		p[d] = weekdayHours
	}
	return p
}
