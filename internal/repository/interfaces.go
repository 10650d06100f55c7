package repository

import (
	"context"
	"time"

	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/srs"
)

// Lookups return (nil, nil) when nothing matches.

// UserRepository handles user data access
type UserRepository interface {
	Create(ctx context.Context, username, apiToken string) (*models.User, error)
	GetByToken(ctx context.Context, apiToken string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// DeckRepository handles deck data access
type DeckRepository interface {
	Insert(ctx context.Context, deck models.Deck) (int64, error)
	// GetOwned returns the deck only if it belongs to userID and is not archived.
	GetOwned(ctx context.Context, id, userID int64) (*models.Deck, error)
	// Summaries lists userID's non-archived decks with card counts, counting a
	// card as due when it has no SRS state or is due by cutoff.
	Summaries(ctx context.Context, userID int64, cutoff time.Time) ([]models.DeckSummary, error)
}

// CardRepository handles card data access
type CardRepository interface {
	Insert(ctx context.Context, card models.Card) (int64, error)
	// GetOwned resolves a card in deckID whose deck belongs to userID.
	GetOwned(ctx context.Context, id, deckID, userID int64) (*models.Card, error)
	// DueCards returns the deck's active cards that were never answered or are
	// due by filter.Cutoff, oldest first.
	DueCards(ctx context.Context, filter models.DueFilter) ([]models.Card, error)
}

// SRSRepository handles per-card scheduling state
type SRSRepository interface {
	// RecordAnswer creates the card's state on first use and applies review to
	// it atomically.
	RecordAnswer(ctx context.Context, review srs.Review) (*models.SRSState, error)
}

// ReviewSessionRepository handles study session records
type ReviewSessionRepository interface {
	Create(ctx context.Context, session models.ReviewSession) (*models.ReviewSession, error)
}
