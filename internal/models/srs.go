package models

import "time"

// DefaultEaseFactor is stored on every new SRS record. Nothing adjusts it yet.
const DefaultEaseFactor = 2.5

// SRSState is the scheduling bookkeeping kept for a card once it has been answered.
type SRSState struct {
	ID             int64      `json:"id" db:"id"`
	CardID         int64      `json:"card_id" db:"card_id"`
	DueAt          time.Time  `json:"due_at" db:"due_at"`
	IntervalDays   int        `json:"interval_days" db:"interval_days"`
	EaseFactor     float64    `json:"ease_factor" db:"ease_factor"`
	Repetitions    int        `json:"repetitions" db:"repetitions"`
	Lapses         int        `json:"lapses" db:"lapses"`
	LastReviewedAt *time.Time `json:"last_reviewed_at" db:"last_reviewed_at"`
}
