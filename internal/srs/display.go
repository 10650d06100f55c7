package srs

import (
	"github.com/vytor/nerdeck/internal/ladder"
	"github.com/vytor/nerdeck/internal/models"
)

// CardState is the ladder position shown for card. Cards that were never
// answered sit on step 0 with no due date.
func CardState(card *models.Card) models.CardState {
	if card == nil || card.SRS == nil {
		return models.CardState{Step: 0, DueAt: ""}
	}
	return models.CardState{
		Step:  ladder.StepForInterval(card.SRS.IntervalDays),
		DueAt: FormatTimestamp(card.SRS.DueAt),
	}
}

// StudyCard is card as sent to the client after an answer.
func StudyCard(card models.Card) models.StudyCard {
	state := CardState(&card)
	return models.StudyCard{
		ID:        card.ID,
		FrontText: card.FrontText,
		BackText:  card.BackText,
		DueAt:     state.DueAt,
		Step:      state.Step,
	}
}
