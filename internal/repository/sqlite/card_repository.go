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

type cardRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: wrap(db), now: time.Now}
}

// cardRow is a card left-joined with its optional SRS state.
type cardRow struct {
	models.Card
	SRSID             sql.NullInt64   `db:"srs_id"`
	SRSDueAt          sql.NullTime    `db:"srs_due_at"`
	SRSIntervalDays   sql.NullInt64   `db:"srs_interval_days"`
	SRSEaseFactor     sql.NullFloat64 `db:"srs_ease_factor"`
	SRSRepetitions    sql.NullInt64   `db:"srs_repetitions"`
	SRSLapses         sql.NullInt64   `db:"srs_lapses"`
	SRSLastReviewedAt sql.NullTime    `db:"srs_last_reviewed_at"`
}

var cardWithSRSColumns = []string{
	"c.id AS id",
	"c.deck_id AS deck_id",
	"c.front_text AS front_text",
	"c.back_text AS back_text",
	"c.status AS status",
	"c.created_at AS created_at",
	"c.updated_at AS updated_at",
	"s.id AS srs_id",
	"s.due_at AS srs_due_at",
	"s.interval_days AS srs_interval_days",
	"s.ease_factor AS srs_ease_factor",
	"s.repetitions AS srs_repetitions",
	"s.lapses AS srs_lapses",
	"s.last_reviewed_at AS srs_last_reviewed_at",
}

func (row cardRow) card() models.Card {
	c := row.Card
	if !row.SRSID.Valid {
		c.SRS = nil
		return c
	}
	state := &models.SRSState{
		ID:           row.SRSID.Int64,
		CardID:       c.ID,
		DueAt:        row.SRSDueAt.Time,
		IntervalDays: int(row.SRSIntervalDays.Int64),
		EaseFactor:   row.SRSEaseFactor.Float64,
		Repetitions:  int(row.SRSRepetitions.Int64),
		Lapses:       int(row.SRSLapses.Int64),
	}
	if row.SRSLastReviewedAt.Valid {
		t := row.SRSLastReviewedAt.Time
		state.LastReviewedAt = &t
	}
	c.SRS = state
	return c
}

func (r *cardRepository) Insert(ctx context.Context, c models.Card) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting card: deck_id=%d", c.DeckID)

	if c.Status == "" {
		c.Status = models.CardStatusActive
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO cards (deck_id, front_text, back_text, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`, c.DeckID, c.FrontText, c.BackText, c.Status, utc(c.CreatedAt), utc(c.UpdatedAt))
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get card id: %v", err)
		return 0, err
	}
	log.Debug("card inserted: id=%d", id)
	return id, nil
}

func (r *cardRepository) GetOwned(ctx context.Context, id, deckID, userID int64) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("fetching card: id=%d, deck_id=%d, user_id=%d", id, deckID, userID)

	query, args, err := sqlBuilder.Select(cardWithSRSColumns...).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		LeftJoin("card_srs s ON s.card_id = c.id").
		Where(squirrel.Eq{"c.id": id, "c.deck_id": deckID, "d.user_id": userID}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var row cardRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if notFound(err) {
		log.Debug("card not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	c := row.card()
	return &c, nil
}

func (r *cardRepository) DueCards(ctx context.Context, filter models.DueFilter) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("fetching due cards: deck_id=%d, cutoff=%s, exclude=%d, limit=%d",
		filter.DeckID, filter.Cutoff, filter.ExcludeCardID, filter.Limit)

	q := sqlBuilder.Select(cardWithSRSColumns...).
		From("cards c").
		LeftJoin("card_srs s ON s.card_id = c.id").
		Where(squirrel.Eq{"c.deck_id": filter.DeckID, "c.status": models.CardStatusActive}).
		Where(squirrel.Or{
			squirrel.Eq{"s.id": nil},
			squirrel.LtOrEq{"s.due_at": utc(filter.Cutoff)},
		}).
		OrderBy("c.created_at ASC", "c.id ASC")
	if filter.ExcludeCardID != 0 {
		q = q.Where(squirrel.NotEq{"c.id": filter.ExcludeCardID})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var rows []cardRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to query due cards: %v", err)
		return nil, err
	}
	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.card())
	}
	log.Debug("found %d due cards", len(cards))
	return cards, nil
}
