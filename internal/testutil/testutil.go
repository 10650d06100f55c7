package testutil

import (
	"context"
	"database/sql"
	"testing"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/db"
	"github.com/vytor/nerdeck/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is held to a single connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Fixtures inserts rows directly so repository tests do not depend on each other.
type Fixtures struct {
	t  *testing.T
	db *sql.DB
}

func NewFixtures(t *testing.T, sqlDB *sql.DB) *Fixtures {
	return &Fixtures{t: t, db: sqlDB}
}

func (f *Fixtures) exec(query string, args ...any) int64 {
	f.t.Helper()
	res, err := f.db.ExecContext(context.Background(), query, args...)
	require.NoError(f.t, err)
	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

// User inserts a user whose API token is "token-<username>".
func (f *Fixtures) User(username string) int64 {
	f.t.Helper()
	return f.exec(`INSERT INTO users (username, api_token, created_at) VALUES (?, ?, ?)`,
		username, "token-"+username, time.Now().UTC())
}

func (f *Fixtures) Deck(userID int64, title string, archived bool) int64 {
	f.t.Helper()
	return f.exec(`INSERT INTO decks (user_id, title, description, is_archived, created_at) VALUES (?, ?, '', ?, ?)`,
		userID, title, archived, time.Now().UTC())
}

// Card inserts an active card created at createdAt.
func (f *Fixtures) Card(deckID int64, front string, createdAt time.Time) int64 {
	f.t.Helper()
	return f.CardWithStatus(deckID, front, models.CardStatusActive, createdAt)
}

func (f *Fixtures) CardWithStatus(deckID int64, front, status string, createdAt time.Time) int64 {
	f.t.Helper()
	return f.exec(`INSERT INTO cards (deck_id, front_text, back_text, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		deckID, front, "back of "+front, status, createdAt.UTC(), createdAt.UTC())
}

// Schedule gives a card SRS state due at dueAt with the given interval.
func (f *Fixtures) Schedule(cardID int64, dueAt time.Time, intervalDays int) int64 {
	f.t.Helper()
	return f.exec(`INSERT INTO card_srs (card_id, due_at, interval_days, ease_factor, repetitions, lapses) VALUES (?, ?, ?, 2.5, 0, 0)`,
		cardID, dueAt.UTC(), intervalDays)
}

// SRS reads back a card's scheduling state, or nil if the card was never answered.
func (f *Fixtures) SRS(cardID int64) *models.SRSState {
	f.t.Helper()
	var state models.SRSState
	err := sqlx.NewDb(f.db, "sqlite3").Get(&state, `
SELECT id, card_id, due_at, interval_days, ease_factor, repetitions, lapses, last_reviewed_at
FROM card_srs WHERE card_id = ?`, cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	require.NoError(f.t, err)
	return &state
}
