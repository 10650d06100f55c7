package models

import "time"

type Deck struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	IsArchived  bool      `json:"is_archived" db:"is_archived"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DeckSummary is a deck with its active card count and how many of those are due today.
type DeckSummary struct {
	Deck
	TotalCards int `json:"total_cards" db:"total_cards"`
	DueCards   int `json:"due_cards" db:"due_cards"`
}
