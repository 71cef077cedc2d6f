package domain

import (
	"errors"
	"time"
)

// Booking is one recorded interval of time a user spent on a project.
// A nil End means the booking is still running.
type Booking struct {
	ID        string
	ProjectID string
	UserID    string
	Start     time.Time
	End       *time.Time
	Tags      []string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrAlreadyFinished = errors.New("booking already finished")

// IsRunning reports whether the booking has no end yet.
func (b *Booking) IsRunning() bool {
	return b.End == nil
}

// Finish closes a running booking at the given instant. An end before the
// start is stored as-is; duration math downstream clamps it to zero.
func (b *Booking) Finish(end, now time.Time) error {
	if b.End != nil {
		return ErrAlreadyFinished
	}
	b.End = &end
	b.UpdatedAt = now
	return nil
}

// HasTag reports whether the booking carries the given tag.
func (b *Booking) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag, deduplicating by identifier.
func (b *Booking) AddTag(tag string, now time.Time) {
	if tag == "" || b.HasTag(tag) {
		return
	}
	b.Tags = append(b.Tags, tag)
	b.UpdatedAt = now
}
