package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
	"github.com/vytor/nerdeck/internal/srs"
)

type srsRepository struct {
	db *sqlx.DB
}

// NewSRSRepository creates a new SRSRepository implementation
func NewSRSRepository(db *sql.DB) repository.SRSRepository {
	return &srsRepository{db: wrap(db)}
}

const srsSelect = `
SELECT id, card_id, due_at, interval_days, ease_factor, repetitions, lapses, last_reviewed_at
FROM card_srs
WHERE card_id = ?
`

// RecordAnswer upserts in a single statement so the first answer to a card and
// concurrent answers to the same card cannot lose an increment.
func (r *srsRepository) RecordAnswer(ctx context.Context, review srs.Review) (*models.SRSState, error) {
	log := logger.FromContext(ctx).WithPrefix("srs_repo")
	log.Debug("recording answer: card_id=%d, correct=%t, interval=%d",
		review.CardID, review.Correct, review.IntervalDays)

	var state models.SRSState
	err := tx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO card_srs (card_id, due_at, interval_days, ease_factor, repetitions, lapses, last_reviewed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(card_id) DO UPDATE SET
    due_at = excluded.due_at,
    interval_days = excluded.interval_days,
    last_reviewed_at = excluded.last_reviewed_at,
    repetitions = card_srs.repetitions + excluded.repetitions,
    lapses = card_srs.lapses + excluded.lapses
`, review.CardID, utc(review.DueAt), review.IntervalDays, models.DefaultEaseFactor,
			review.RepetitionsDelta(), review.LapsesDelta(), utc(review.ReviewedAt)); err != nil {
			return err
		}
		return tx.GetContext(ctx, &state, srsSelect, review.CardID)
	})
	if err != nil {
		log.Error("failed to record answer: %v", err)
		return nil, err
	}
	log.Debug("srs state saved: repetitions=%d, lapses=%d", state.Repetitions, state.Lapses)
	return &state, nil
}
