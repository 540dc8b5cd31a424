package models

import "time"

// ReviewRecord is one row of the append-only review log kept alongside
// the learner state. The log is never read back into the state machine;
// it exists for history and statistics queries.
type ReviewRecord struct {
	ID         int64     `json:"id" db:"id"`
	WordID     int       `json:"word_id" db:"word_id"`
	Known      bool      `json:"known" db:"known"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	ReviewedAt time.Time `json:"reviewed_at" db:"reviewed_at"`
}
