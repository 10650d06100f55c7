package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
)

type reviewSessionRepository struct {
	db *sqlx.DB
}

// NewReviewSessionRepository creates a new ReviewSessionRepository implementation
func NewReviewSessionRepository(db *sql.DB) repository.ReviewSessionRepository {
	return &reviewSessionRepository{db: wrap(db)}
}

func (r *reviewSessionRepository) Create(ctx context.Context, s models.ReviewSession) (*models.ReviewSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("creating review session: user_id=%d, mode=%s", s.UserID, s.Mode)

	if s.Mode == "" {
		s.Mode = models.SessionModeReview
	}
	var endedAt *time.Time
	if s.EndedAt != nil {
		t := utc(*s.EndedAt)
		endedAt = &t
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO review_sessions (user_id, mode, started_at, ended_at)
VALUES (?, ?, ?, ?)
`, s.UserID, s.Mode, utc(s.StartedAt), endedAt)
	if err != nil {
		log.Error("failed to create review session: %v", err)
		return nil, err
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		log.Error("failed to get review session id: %v", err)
		return nil, err
	}
	log.Debug("review session created: id=%d", s.ID)
	return &s, nil
}
