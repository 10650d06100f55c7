package services

import (
	"context"
	"strings"

	"github.com/vytor/nerdeck/internal/errors"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
	"github.com/vytor/nerdeck/internal/srs"
)

// DeckService handles deck overview and content creation
type DeckService interface {
	ListDecks(ctx context.Context, userID int64) ([]models.DeckSummary, error)
	CreateDeck(ctx context.Context, userID int64, title, description string) (*models.Deck, error)
	AddCard(ctx context.Context, userID, deckID int64, front, back string) (*models.Card, error)
}

type deckService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
	calendar srs.Calendar
}

// NewDeckService creates a new DeckService
func NewDeckService(deckRepo repository.DeckRepository, cardRepo repository.CardRepository, calendar srs.Calendar) DeckService {
	return &deckService{deckRepo: deckRepo, cardRepo: cardRepo, calendar: calendar}
}

func (s *deckService) ListDecks(ctx context.Context, userID int64) ([]models.DeckSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing decks: user_id=%d", userID)

	decks, err := s.deckRepo.Summaries(ctx, userID, s.calendar.EndOfToday())
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) CreateDeck(ctx context.Context, userID int64, title, description string) (*models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating deck: user_id=%d, title=%s", userID, title)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.NewValidationError("title", "cannot be empty")
	}

	deck := models.Deck{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.calendar.Now(),
	}
	id, err := s.deckRepo.Insert(ctx, deck)
	if err != nil {
		log.Error("failed to create deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	deck.ID = id
	return &deck, nil
}

func (s *deckService) AddCard(ctx context.Context, userID, deckID int64, front, back string) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("adding card: user_id=%d, deck_id=%d", userID, deckID)

	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" {
		return nil, errors.NewValidationError("front_text", "cannot be empty")
	}
	if back == "" {
		return nil, errors.NewValidationError("back_text", "cannot be empty")
	}

	deck, err := s.deckRepo.GetOwned(ctx, deckID, userID)
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	now := s.calendar.Now()
	card := models.Card{
		DeckID:    deck.ID,
		FrontText: front,
		BackText:  back,
		Status:    models.CardStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.cardRepo.Insert(ctx, card)
	if err != nil {
		log.Error("failed to add card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	card.ID = id
	return &card, nil
}
