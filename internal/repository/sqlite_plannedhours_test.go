package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoigt/timebook/internal/domain"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/testutil"
)

func TestSQLitePlannedHoursRepo_GetDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlannedHoursRepo(database)

	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, p, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.Equal(t, 0.0, p[d], "weekday %s should default to zero", d)
	}
}

func TestSQLitePlannedHoursRepo_SetAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlannedHoursRepo(database)
	ctx := context.Background()

	want := testutil.NewTestPlan(8)
	want[time.Friday] = 6.5
	require.NoError(t, repo.Set(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 38.5, got.WeekTotal())
}

func TestSQLitePlannedHoursRepo_SetOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlannedHoursRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, testutil.NewTestPlan(8)))
	require.NoError(t, repo.Set(ctx, testutil.NewTestPlan(4)))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got[time.Monday])
	assert.Equal(t, 20.0, got.WeekTotal())
}

func TestSQLitePlannedHoursRepo_SetRejectsInvalid(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlannedHoursRepo(database)
	ctx := context.Background()

	negative := testutil.NewTestPlan(8)
	negative[time.Tuesday] = -1
	assert.Error(t, repo.Set(ctx, negative))

	partial := domain.PlannedHours{time.Monday: 8}
	assert.Error(t, repo.Set(ctx, partial))

	// a rejected plan must not clobber the stored one
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got[time.Monday])
}
