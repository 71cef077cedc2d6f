package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/avoigt/timebook/internal/db"
	"github.com/avoigt/timebook/internal/domain"
)

const bookingColumns = `id, project_id, user_id, start_time, end_time, duration_sec, note, created_at, updated_at`

// SQLiteBookingRepo implements BookingRepo on top of a SQLite database.
// Timestamps are stored as RFC3339 text so the original UTC offset of a
// booking survives the round trip; range comparisons go through SQLite's
// datetime() to normalize offsets.
type SQLiteBookingRepo struct {
	db db.DBTX
}

// NewSQLiteBookingRepo creates a new SQLiteBookingRepo. It accepts any
// DBTX, so the same repo works inside a transaction.
func NewSQLiteBookingRepo(dbtx db.DBTX) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: dbtx}
}

func (r *SQLiteBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ProjectID,
		b.UserID,
		b.Start.Format(time.RFC3339),
		nullableTimeToString(b.End, time.RFC3339),
		durationSec(b),
		b.Note,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return r.replaceTags(ctx, b.ID, b.Tags)
}

func (r *SQLiteBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := r.scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return b, r.attachTags(ctx, []*domain.Booking{b})
}

func (r *SQLiteBookingRepo) GetRunning(ctx context.Context, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE user_id = ? AND end_time IS NULL`
	b, err := r.scanBooking(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, err
	}
	return b, r.attachTags(ctx, []*domain.Booking{b})
}

func (r *SQLiteBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
		SET project_id = ?, user_id = ?, start_time = ?, end_time = ?,
		    duration_sec = ?, note = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.ProjectID,
		b.UserID,
		b.Start.Format(time.RFC3339),
		nullableTimeToString(b.End, time.RFC3339),
		durationSec(b),
		b.Note,
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating booking: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("booking %s: %w", b.ID, ErrNotFound)
	}
	return r.replaceTags(ctx, b.ID, b.Tags)
}

func (r *SQLiteBookingRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE datetime(start_time) <= datetime(?)
		  AND (end_time IS NULL OR datetime(end_time) >= datetime(?))
		ORDER BY datetime(start_time)`
	rows, err := r.db.QueryContext(ctx, query, utcString(to), utcString(from))
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	return bookings, r.attachTags(ctx, bookings)
}

func (r *SQLiteBookingRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE project_id = ? ORDER BY datetime(start_time)`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings by project: %w", err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	return bookings, r.attachTags(ctx, bookings)
}

func (r *SQLiteBookingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	return nil
}

// durationSec holds the exact integer duration for finished bookings so
// persisted totals don't depend on float formatting. Zero while running.
func durationSec(b *domain.Booking) int64 {
	if b.End == nil {
		return 0
	}
	sec := int64(b.End.Sub(b.Start).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}

func (r *SQLiteBookingRepo) replaceTags(ctx context.Context, bookingID string, tags []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM booking_tags WHERE booking_id = ?`, bookingID); err != nil {
		return fmt.Errorf("clearing booking tags: %w", err)
	}
	for _, tag := range tags {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO booking_tags (booking_id, tag) VALUES (?, ?)`, bookingID, tag); err != nil {
			return fmt.Errorf("inserting booking tag: %w", err)
		}
	}
	return nil
}

// attachTags loads tags for the given bookings in one query.
func (r *SQLiteBookingRepo) attachTags(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Booking, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	clause, args := inPlaceholders(ids)
	rows, err := r.db.QueryContext(ctx,
		`SELECT booking_id, tag FROM booking_tags WHERE booking_id IN `+clause+` ORDER BY tag`, args...)
	if err != nil {
		return fmt.Errorf("loading booking tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID, tag string
		if err := rows.Scan(&bookingID, &tag); err != nil {
			return fmt.Errorf("scanning booking tag: %w", err)
		}
		if b := byID[bookingID]; b != nil {
			b.Tags = append(b.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating booking tags: %w", err)
	}
	for _, b := range bookings {
		sort.Strings(b.Tags)
	}
	return nil
}

func (r *SQLiteBookingRepo) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var startStr, createdStr, updatedStr string
	var endStr sql.NullString
	var durSec int64

	err := row.Scan(
		&b.ID, &b.ProjectID, &b.UserID, &startStr, &endStr, &durSec, &b.Note, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning booking: %w", err)
	}
	return populateBooking(&b, startStr, endStr, createdStr, updatedStr)
}

func (r *SQLiteBookingRepo) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		var startStr, createdStr, updatedStr string
		var endStr sql.NullString
		var durSec int64

		err := rows.Scan(
			&b.ID, &b.ProjectID, &b.UserID, &startStr, &endStr, &durSec, &b.Note, &createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning booking row: %w", err)
		}

		booking, parseErr := populateBooking(&b, startStr, endStr, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}
	return bookings, nil
}

// populateBooking fills in parsed time fields after scanning raw strings.
func populateBooking(b *domain.Booking, startStr string, endStr sql.NullString, createdStr, updatedStr string) (*domain.Booking, error) {
	var parseErr error
	b.Start, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	b.End = parseNullableTime(endStr, time.RFC3339)
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return b, nil
}
