package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vytor/nerdeck/internal/errors"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/services"
)

// answerRequest is the review answer body. Pointers distinguish an absent
// key from false or zero.
type answerRequest struct {
	CardID  *int64  `json:"card_id" validate:"required"`
	IsRight *bool   `json:"is_right" validate:"required"`
	Step    *int    `json:"step"`
	DueAt   *string `json:"due_at"`
}

func (s *Server) handleStartStudy(w http.ResponseWriter, r *http.Request) {
	deckID, err := deckIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context()).WithField("deck_id", deckID)
	log.Debug("starting study session")

	user := userFromContext(r.Context())
	session, err := s.StudyService.StartSession(r.Context(), user.ID, deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleReviewAnswer(w http.ResponseWriter, r *http.Request) {
	deckID, err := deckIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req answerRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		handleError(w, r, errors.NewInvalidJSONError(err))
		return
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after JSON body")
		}
		handleError(w, r, errors.NewInvalidJSONError(err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		handleError(w, r, errors.NewMissingFieldsError(err))
		return
	}

	answer := services.Answer{
		CardID:  *req.CardID,
		IsRight: *req.IsRight,
		Step:    req.Step,
	}
	if req.DueAt != nil {
		answer.DueAt = *req.DueAt
	}

	log := logger.FromContext(r.Context()).WithFields(map[string]any{
		"deck_id":  deckID,
		"card_id":  answer.CardID,
		"is_right": answer.IsRight,
	})
	log.Debug("reviewing card")

	user := userFromContext(r.Context())
	result, err := s.StudyService.SubmitAnswer(r.Context(), user.ID, deckID, answer)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
