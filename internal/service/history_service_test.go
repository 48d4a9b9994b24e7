package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/alexanderramin/golive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRuns(t *testing.T, runs *repository.SQLiteRunRepo) []*domain.Run {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seeded := []*domain.Run{
		testutil.NewTestRun(93.1, testutil.WithTarget(93), testutil.WithCreatedAt(base)),
		testutil.NewTestRun(95.4, testutil.WithRunKind(domain.RunSimulate), testutil.WithCreatedAt(base.Add(time.Hour))),
		testutil.NewTestRun(86.3, testutil.WithTarget(90),
			testutil.WithReasons("Migration blocking"), testutil.WithCreatedAt(base.Add(2*time.Hour))),
	}
	for _, r := range seeded {
		require.NoError(t, runs.Create(context.Background(), r))
	}
	return seeded
}

func TestHistory_ListNewestFirst(t *testing.T) {
	runs := repository.NewSQLiteRunRepo(testutil.NewTestDB(t))
	seeded := seedRuns(t, runs)
	svc := NewHistoryService(runs)

	got, err := svc.List(context.Background(), app.HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, seeded[2].ID, got[0].ID)
	assert.Equal(t, []string{"Migration blocking"}, got[0].Reasons)
}

func TestHistory_FilterAndLimit(t *testing.T) {
	runs := repository.NewSQLiteRunRepo(testutil.NewTestDB(t))
	seeded := seedRuns(t, runs)
	svc := NewHistoryService(runs)
	ctx := context.Background()

	got, err := svc.List(ctx, app.HistoryRequest{Kind: domain.RunOptimize, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, seeded[2].ID, got[0].ID)

	_, err = svc.List(ctx, app.HistoryRequest{Kind: "replay"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_GetAndDelete(t *testing.T) {
	runs := repository.NewSQLiteRunRepo(testutil.NewTestDB(t))
	seeded := seedRuns(t, runs)
	svc := NewHistoryService(runs)
	ctx := context.Background()

	run, err := svc.Get(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, 93.1, run.Quality, 1e-9)

	require.NoError(t, svc.Delete(ctx, seeded[0].ID))
	_, err = svc.Get(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
