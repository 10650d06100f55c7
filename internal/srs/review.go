package srs

import (
	"time"

	"github.com/vytor/nerdeck/internal/models"
)

// Review is one answer to a card, with the bookkeeping derived from it.
type Review struct {
	CardID       int64
	Correct      bool
	DueAt        time.Time
	IntervalDays int
	ReviewedAt   time.Time
}

// NewReview records an answer given now. dueAt is chosen by the client; the
// interval is the number of calendar days from today to dueAt and does not
// depend on when the card was previously due.
func (c Calendar) NewReview(cardID int64, correct bool, dueAt time.Time) Review {
	now := c.Now()
	return Review{
		CardID:       cardID,
		Correct:      correct,
		DueAt:        dueAt,
		IntervalDays: c.DaysBetween(now, dueAt),
		ReviewedAt:   now,
	}
}

// RepetitionsDelta is 1 for a right answer and 0 otherwise.
func (r Review) RepetitionsDelta() int {
	if r.Correct {
		return 1
	}
	return 0
}

// LapsesDelta is 1 for a wrong answer and 0 otherwise.
func (r Review) LapsesDelta() int {
	if r.Correct {
		return 0
	}
	return 1
}

// Apply returns the state after r. A nil state is a card that has never been
// answered; it starts from the defaults with r's due date.
func Apply(state *models.SRSState, r Review) models.SRSState {
	var next models.SRSState
	if state != nil {
		next = *state
	} else {
		next = models.SRSState{
			CardID:     r.CardID,
			DueAt:      r.DueAt,
			EaseFactor: models.DefaultEaseFactor,
		}
	}

	reviewedAt := r.ReviewedAt
	next.DueAt = r.DueAt
	next.IntervalDays = r.IntervalDays
	next.LastReviewedAt = &reviewedAt
	next.Repetitions += r.RepetitionsDelta()
	next.Lapses += r.LapsesDelta()
	return next
}
