package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/nerdeck/internal/errors"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
)

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing decks")

	user := userFromContext(r.Context())
	decks, err := s.DeckService.ListDecks(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if decks == nil {
		decks = []models.DeckSummary{}
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"decks": decks})
}

// deckIDParam reads {deckID}. A malformed id cannot name a deck, so it is
// reported the same way as a deck that does not exist.
func deckIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "deckID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warn("invalid deck ID: %s", raw)
		return 0, errors.NewNotFoundError("deck", raw)
	}
	return id, nil
}
