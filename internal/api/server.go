package api

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/nerdeck/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	UserService    services.UserService
	DeckService    services.DeckService
	StudyService   services.StudyService
	DB             Pinger
	RequestTimeout time.Duration

	validate *validator.Validate
}

// NewServer wires the HTTP layer to its services.
func NewServer(users services.UserService, decks services.DeckService, study services.StudyService, db Pinger, requestTimeout time.Duration) *Server {
	return &Server{
		UserService:    users,
		DeckService:    decks,
		StudyService:   study,
		DB:             db,
		RequestTimeout: requestTimeout,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}
