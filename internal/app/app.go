package app

import (
	"github.com/vytor/nerdeck/internal/config"
	"github.com/vytor/nerdeck/internal/db"
	"github.com/vytor/nerdeck/internal/repository/sqlite"
	"github.com/vytor/nerdeck/internal/services"
	"github.com/vytor/nerdeck/internal/srs"
)

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	DB       *db.DB
	Calendar srs.Calendar
	Users    services.UserService
	Decks    services.DeckService
	Study    services.StudyService
}

// New builds repositories and services over database, measuring days in
// calendar's zone.
func New(database *db.DB, calendar srs.Calendar) *App {
	users := sqlite.NewUserRepository(database.DB)
	decks := sqlite.NewDeckRepository(database.DB)
	cards := sqlite.NewCardRepository(database.DB)
	srsRepo := sqlite.NewSRSRepository(database.DB)
	sessions := sqlite.NewReviewSessionRepository(database.DB)

	return &App{
		DB:       database,
		Calendar: calendar,
		Users:    services.NewUserService(users),
		Decks:    services.NewDeckService(decks, cards, calendar),
		Study:    services.NewStudyService(decks, cards, srsRepo, sessions, calendar),
	}
}

// Open validates cfg, opens the database and builds the App.
func Open(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return New(database, srs.NewCalendar(loc, nil)), nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
