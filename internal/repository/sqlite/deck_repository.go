package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
)

type deckRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: wrap(db), now: time.Now}
}

var deckColumns = []string{
	"d.id AS id",
	"d.user_id AS user_id",
	"d.title AS title",
	"d.description AS description",
	"d.is_archived AS is_archived",
	"d.created_at AS created_at",
}

func (r *deckRepository) Insert(ctx context.Context, d models.Deck) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: user_id=%d, title=%s", d.UserID, d.Title)

	if d.CreatedAt.IsZero() {
		d.CreatedAt = r.now()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO decks (user_id, title, description, is_archived, created_at)
VALUES (?, ?, ?, ?, ?)
`, d.UserID, d.Title, d.Description, d.IsArchived, utc(d.CreatedAt))
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get deck id: %v", err)
		return 0, err
	}
	log.Debug("deck inserted: id=%d", id)
	return id, nil
}

func (r *deckRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("fetching deck: id=%d, user_id=%d", id, userID)

	query, args, err := sqlBuilder.Select(deckColumns...).
		From("decks d").
		Where(squirrel.Eq{"d.id": id, "d.user_id": userID, "d.is_archived": false}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var d models.Deck
	err = r.db.GetContext(ctx, &d, query, args...)
	if notFound(err) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) Summaries(ctx context.Context, userID int64, cutoff time.Time) ([]models.DeckSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("summarising decks: user_id=%d, cutoff=%s", userID, cutoff)

	query, args, err := sqlBuilder.Select(deckColumns...).
		Column("COUNT(c.id) AS total_cards").
		Column(squirrel.Expr(
			"COALESCE(SUM(CASE WHEN c.id IS NOT NULL AND (s.id IS NULL OR s.due_at <= ?) THEN 1 ELSE 0 END), 0) AS due_cards",
			utc(cutoff),
		)).
		From("decks d").
		LeftJoin("cards c ON c.deck_id = d.id AND c.status = ?", models.CardStatusActive).
		LeftJoin("card_srs s ON s.card_id = c.id").
		Where(squirrel.Eq{"d.user_id": userID, "d.is_archived": false}).
		GroupBy("d.id").
		OrderBy("d.created_at ASC", "d.id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	summaries := []models.DeckSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		log.Error("failed to summarise decks: %v", err)
		return nil, err
	}
	log.Debug("found %d decks", len(summaries))
	return summaries, nil
}
