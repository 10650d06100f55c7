package models

import "time"

// Review session modes.
const (
	SessionModeReview = "review"
	SessionModeCram   = "cram"
)

// ReviewSession records that a user started studying. EndedAt is never
// written by the scheduler; closing a session is left to a future action.
type ReviewSession struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	Mode      string     `json:"mode" db:"mode"`
	StartedAt time.Time  `json:"started_at" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at" db:"ended_at"`
}
