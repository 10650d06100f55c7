package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/srs"
)

func TestCardState_NeverReviewed(t *testing.T) {
	assert.Equal(t, models.CardState{Step: 0, DueAt: ""}, srs.CardState(nil))
	assert.Equal(t, models.CardState{Step: 0, DueAt: ""}, srs.CardState(&models.Card{ID: 1}))
}

func TestCardState_UsesLadderStep(t *testing.T) {
	due := time.Date(2024, 4, 16, 10, 0, 0, 0, time.UTC)

	onRung := srs.CardState(&models.Card{SRS: &models.SRSState{IntervalDays: 7, DueAt: due}})
	offRung := srs.CardState(&models.Card{SRS: &models.SRSState{IntervalDays: 5, DueAt: due}})

	assert.Equal(t, models.CardState{Step: 3, DueAt: "2024-04-16T10:00:00+00:00"}, onRung)
	assert.Equal(t, models.CardState{Step: 0, DueAt: "2024-04-16T10:00:00+00:00"}, offRung)
}

func TestStudyCard(t *testing.T) {
	card := models.Card{
		ID:        9,
		FrontText: "hola",
		BackText:  "hello",
		SRS:       &models.SRSState{IntervalDays: 1, DueAt: time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, models.StudyCard{
		ID:        9,
		FrontText: "hola",
		BackText:  "hello",
		DueAt:     "2024-04-16T00:00:00+00:00",
		Step:      1,
	}, srs.StudyCard(card))

	card.SRS = nil
	assert.Equal(t, models.StudyCard{ID: 9, FrontText: "hola", BackText: "hello"}, srs.StudyCard(card))
}
