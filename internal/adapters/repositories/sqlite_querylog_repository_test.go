package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"travel-estimate-service/internal/domain"
)

func newTestRepo(t *testing.T) *SqliteQueryLogRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A pooled :memory: connection would open a fresh empty database;
	// pin everything to one connection.
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSqliteSchema(db))
	return NewSqliteQueryLogRepository(db)
}

func successEntry(session, origin, destination string, km float64) domain.QueryLogEntry {
	rows := domain.EstimateFares(km)
	return domain.NewSuccessEntry(session, origin, destination, km, domain.EstimateResult{
		Message: origin + " から " + destination + " へのルート",
		Data:    rows,
	})
}

func TestSqliteQueryLogAppendAndRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, successEntry("s1", "熊本駅", "大阪駅", 390.5)))
	require.NoError(t, repo.Append(ctx, domain.NewFailureEntry("s1", "熊本駅", "存在しない駅", "place not found: 存在しない駅")))
	require.NoError(t, repo.Append(ctx, successEntry("s1", "東京駅", "大阪駅", 403.2)))
	require.NoError(t, repo.Append(ctx, successEntry("s2", "大阪駅", "熊本駅", 390.5)))

	entries, err := repo.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 3, "cross-session rows must not leak")

	// Newest first; insertion order breaks created_at ties.
	assert.Equal(t, "東京駅", entries[0].Origin)
	assert.Equal(t, "存在しない駅", entries[1].Destination)
	assert.Equal(t, "熊本駅", entries[2].Origin)

	require.NotNil(t, entries[0].DistanceKm)
	assert.InDelta(t, 403.2, *entries[0].DistanceKm, 1e-9)
	assert.Nil(t, entries[0].Error)

	require.NotNil(t, entries[1].Error)
	assert.Equal(t, "place not found: 存在しない駅", *entries[1].Error)
	assert.Nil(t, entries[1].DistanceKm)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].CreatedAt.Before(entries[i].CreatedAt),
			"entries must be ordered by created_at descending")
	}
}

func TestSqliteQueryLogRecentLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Append(ctx, successEntry("s1", "A", "B", float64(i))))
	}

	entries, err := repo.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 10)

	// Most recent insert carries the largest distance.
	require.NotNil(t, entries[0].DistanceKm)
	assert.Equal(t, 14.0, *entries[0].DistanceKm)
}

func TestSqliteQueryLogRecentUnknownSession(t *testing.T) {
	repo := newTestRepo(t)

	entries, err := repo.Recent(context.Background(), "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSqliteQueryLogRejectsInvalidEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	neither := domain.QueryLogEntry{SessionID: "s1", Origin: "A", Destination: "B"}
	require.Error(t, repo.Append(ctx, neither))

	msg := "boom"
	both := successEntry("s1", "A", "B", 1)
	both.Error = &msg
	require.Error(t, repo.Append(ctx, both))

	entries, err := repo.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid entries must not be written")
}
