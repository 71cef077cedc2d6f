package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avoigt/timebook/internal/db"
	"github.com/avoigt/timebook/internal/domain"
)

// SQLitePlannedHoursRepo implements PlannedHoursRepo. The planned_hours
// table always holds all seven weekday rows (seeded by migration), so Get
// never returns a partial plan.
type SQLitePlannedHoursRepo struct {
	db db.DBTX
}

// NewSQLitePlannedHoursRepo creates a new SQLitePlannedHoursRepo.
func NewSQLitePlannedHoursRepo(dbtx db.DBTX) *SQLitePlannedHoursRepo {
	return &SQLitePlannedHoursRepo{db: dbtx}
}

func (r *SQLitePlannedHoursRepo) Get(ctx context.Context) (domain.PlannedHours, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT weekday, hours FROM planned_hours`)
	if err != nil {
		return nil, fmt.Errorf("loading planned hours: %w", err)
	}
	defer rows.Close()

	p := domain.DefaultPlannedHours()
	for rows.Next() {
		var weekday int
		var hours float64
		if err := rows.Scan(&weekday, &hours); err != nil {
			return nil, fmt.Errorf("scanning planned hours: %w", err)
		}
		p[time.Weekday(weekday)] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planned hours: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stored planned hours invalid: %w", err)
	}
	return p, nil
}

func (r *SQLitePlannedHoursRepo) Set(ctx context.Context, p domain.PlannedHours) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO planned_hours (weekday, hours) VALUES (?, ?)
			 ON CONFLICT(weekday) DO UPDATE SET hours = excluded.hours`,
			int(d), p[d]); err != nil {
			return fmt.Errorf("saving planned hours for %s: %w", d, err)
		}
	}
	return nil
}
