package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/bernoulli/internal/lesson"
	"github.com/jmoiron/sqlx"
)

// ErrSessionNotFound is returned when a chat has no stored session
var ErrSessionNotFound = errors.New("session not found")

// sessionRow is a row of the sessions table
type sessionRow struct {
	ChatID    int64     `db:"chat_id"`
	State     string    `db:"state"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SessionRepository stores the lesson state of each chat. Sessions are
// transient: idle rows are purged by the scheduler.
type SessionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// timestamp truncates to whole seconds so stored values compare correctly as
// text in SQLite
func (r *SessionRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Second)
}

// Get returns the stored state of a chat
func (r *SessionRepository) Get(ctx context.Context, chatID int64) (*lesson.State, error) {
	query := r.db.Rebind(`SELECT chat_id, state, updated_at FROM sessions WHERE chat_id = ?`)

	var row sessionRow
	err := r.db.GetContext(ctx, &row, query, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var state lesson.State
	if err := json.Unmarshal([]byte(row.State), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %d: %w", chatID, err)
	}
	return &state, nil
}

// Save inserts or replaces the state of a chat and marks it active
func (r *SessionRepository) Save(ctx context.Context, chatID int64, state lesson.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := r.db.Rebind(`
		INSERT INTO sessions (chat_id, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (chat_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at
	`)
	if _, err := r.db.ExecContext(ctx, query, chatID, string(data), r.timestamp()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the session of a chat
func (r *SessionRepository) Delete(ctx context.Context, chatID int64) error {
	query := r.db.Rebind(`DELETE FROM sessions WHERE chat_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, chatID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeIdle deletes sessions not touched within ttl and returns how many were removed
func (r *SessionRepository) PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := r.timestamp().Add(-ttl)

	query := r.db.Rebind(`DELETE FROM sessions WHERE updated_at < ?`)
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM sessions`); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
