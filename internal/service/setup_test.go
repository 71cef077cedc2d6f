package service

import (
	"testing"

	"github.com/avoigt/timebook/internal/db"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteBookingRepo, *repository.SQLitePlannedHoursRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteBookingRepo(database),
		repository.NewSQLitePlannedHoursRepo(database),
		testutil.NewTestUoW(database)
}
