package services

import (
	"context"

	"github.com/vytor/nerdeck/internal/errors"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
	"github.com/vytor/nerdeck/internal/srs"
)

// Answer is one study answer as submitted by a client. Step is the client's
// own ladder position; it is accepted but the server derives steps itself.
type Answer struct {
	CardID  int64
	IsRight bool
	Step    *int
	DueAt   string
}

// StudyService starts study sessions and records answers
type StudyService interface {
	StartSession(ctx context.Context, userID, deckID int64) (*models.StudySession, error)
	SubmitAnswer(ctx context.Context, userID, deckID int64, answer Answer) (*models.AnswerResult, error)
}

type studyService struct {
	deckRepo    repository.DeckRepository
	cardRepo    repository.CardRepository
	srsRepo     repository.SRSRepository
	sessionRepo repository.ReviewSessionRepository
	calendar    srs.Calendar
}

// NewStudyService creates a new StudyService
func NewStudyService(
	deckRepo repository.DeckRepository,
	cardRepo repository.CardRepository,
	srsRepo repository.SRSRepository,
	sessionRepo repository.ReviewSessionRepository,
	calendar srs.Calendar,
) StudyService {
	return &studyService{
		deckRepo:    deckRepo,
		cardRepo:    cardRepo,
		srsRepo:     srsRepo,
		sessionRepo: sessionRepo,
		calendar:    calendar,
	}
}

func (s *studyService) StartSession(ctx context.Context, userID, deckID int64) (*models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("study").WithFields(map[string]any{
		"user_id": userID,
		"deck_id": deckID,
	})
	log.Debug("starting study session")

	deck, err := s.deckRepo.GetOwned(ctx, deckID, userID)
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	cards, err := s.cardRepo.DueCards(ctx, models.DueFilter{
		DeckID: deck.ID,
		Cutoff: s.calendar.EndOfToday(),
	})
	if err != nil {
		log.Error("failed to get due cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if cards == nil {
		cards = []models.Card{}
	}

	session, err := s.sessionRepo.Create(ctx, models.ReviewSession{
		UserID:    userID,
		Mode:      models.SessionModeReview,
		StartedAt: s.calendar.Now(),
	})
	if err != nil {
		log.Error("failed to create review session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	var current *models.Card
	if len(cards) > 0 {
		first := cards[0]
		current = &first
	}

	log.Info("study session started: session_id=%d, due=%d", session.ID, len(cards))
	return &models.StudySession{
		Deck:             *deck,
		Cards:            cards,
		CurrentCard:      current,
		CurrentCardState: srs.CardState(current),
		Session:          *session,
	}, nil
}

func (s *studyService) SubmitAnswer(ctx context.Context, userID, deckID int64, answer Answer) (*models.AnswerResult, error) {
	log := logger.FromContext(ctx).WithPrefix("study").WithFields(map[string]any{
		"user_id": userID,
		"deck_id": deckID,
		"card_id": answer.CardID,
	})
	log.Debug("submitting answer: is_right=%t, due_at=%q", answer.IsRight, answer.DueAt)

	dueAt, err := srs.ParseTimestamp(answer.DueAt)
	if err != nil {
		dueAt = s.calendar.Now()
		if answer.DueAt == "" {
			log.Debug("no due_at, using now")
		} else {
			log.Warn("unparseable due_at, using now: %v", err)
		}
	}

	card, err := s.cardRepo.GetOwned(ctx, answer.CardID, deckID, userID)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", answer.CardID)
	}

	review := s.calendar.NewReview(card.ID, answer.IsRight, dueAt)
	state, err := s.srsRepo.RecordAnswer(ctx, review)
	if err != nil {
		log.Error("failed to record answer: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("answer recorded: interval=%d, repetitions=%d, lapses=%d",
		state.IntervalDays, state.Repetitions, state.Lapses)

	next, err := s.cardRepo.DueCards(ctx, models.DueFilter{
		DeckID:        deckID,
		Cutoff:        s.calendar.EndOfToday(),
		ExcludeCardID: card.ID,
		Limit:         1,
	})
	if err != nil {
		log.Error("failed to get next card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := &models.AnswerResult{OK: true}
	if len(next) > 0 {
		nextCard := srs.StudyCard(next[0])
		result.NextCard = &nextCard
	}
	return result, nil
}
