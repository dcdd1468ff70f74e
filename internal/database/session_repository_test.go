package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/bernoulli/internal/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*SessionRepository, *time.Time) {
	t.Helper()
	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(db)
	repo.now = func() time.Time { return now }
	return repo, &now
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, DriverPostgres, DriverFor("postgres://user@localhost/db"))
	assert.Equal(t, DriverPostgres, DriverFor("postgresql://localhost/db"))
	assert.Equal(t, DriverSQLite, DriverFor("file::memory:?cache=shared"))
	assert.Equal(t, DriverSQLite, DriverFor("./data/sessions.db"))
}

func TestSqliteDir(t *testing.T) {
	assert.Equal(t, "", sqliteDir(":memory:"))
	assert.Equal(t, "", sqliteDir("file::memory:?cache=shared"))
	assert.Equal(t, "", sqliteDir("file:test?mode=memory&cache=shared"))
	assert.Equal(t, "", sqliteDir("sessions.db"))
	assert.Equal(t, "data", sqliteDir("file:data/sessions.db?_busy_timeout=500"))
}

func TestConnect_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.db")
	db, err := Connect(path)
	require.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepository(db)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	state := lesson.State{Speed: 7, Name: "Ada", Avatar: 1, Answers: []int{1, 0, 2}, Strand: 2, AwaitingReflection: true}
	require.NoError(t, repo.Save(ctx, 42, state))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, state, *got)

	state.Speed = 3
	require.NoError(t, repo.Save(ctx, 42, state))
	got, err = repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Speed)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.Delete(ctx, 42))
	_, err = repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_PurgeIdle(t *testing.T) {
	repo, now := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 1, lesson.State{Speed: 1}))
	*now = now.Add(90 * time.Minute)
	require.NoError(t, repo.Save(ctx, 2, lesson.State{Speed: 2}))
	*now = now.Add(45 * time.Minute)

	removed, err := repo.PurgeIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.Get(ctx, 2)
	assert.NoError(t, err)
}
