package models

import "time"

// Card lifecycle states. Only active cards are scheduled.
const (
	CardStatusActive    = "active"
	CardStatusSuspended = "suspended"
	CardStatusArchived  = "archived"
)

type Card struct {
	ID        int64     `json:"id" db:"id"`
	DeckID    int64     `json:"deck_id" db:"deck_id"`
	FrontText string    `json:"front_text" db:"front_text"`
	BackText  string    `json:"back_text" db:"back_text"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// SRS is nil until the card is answered for the first time.
	SRS *SRSState `json:"srs,omitempty" db:"-"`
}

// DueFilter selects the cards of one deck that are reviewable by Cutoff.
type DueFilter struct {
	DeckID        int64
	Cutoff        time.Time
	ExcludeCardID int64 // 0 means exclude nothing
	Limit         int   // 0 means no limit
}
