package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The full statement list re-runs on
// every open; statements are idempotent and ALTER TABLE duplicates are
// tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL DEFAULT 'default',
		start_time   TEXT NOT NULL,
		end_time     TEXT,
		duration_sec INTEGER NOT NULL DEFAULT 0,
		note         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_project ON bookings(project_id)`,

	// At most one running booking per user.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_running
		ON bookings(user_id) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS booking_tags (
		booking_id TEXT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		tag        TEXT NOT NULL,
		PRIMARY KEY (booking_id, tag)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_booking_tags_tag ON booking_tags(tag)`,

	// Weekday follows time.Weekday: 0 = Sunday .. 6 = Saturday. All seven
	// rows always exist; days without a plan carry 0.
	`CREATE TABLE IF NOT EXISTS planned_hours (
		weekday INTEGER PRIMARY KEY CHECK(weekday BETWEEN 0 AND 6),
		hours   REAL NOT NULL DEFAULT 0 CHECK(hours >= 0)
	)`,

	`INSERT OR IGNORE INTO planned_hours (weekday, hours)
		VALUES (0,0),(1,0),(2,0),(3,0),(4,0),(5,0),(6,0)`,
}
