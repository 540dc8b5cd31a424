package models

import "time"

// Difficulty rates how hard a word felt on its last review and drives
// the review interval for known words.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the recognized difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// WordProgress tracks the review state of a single word. A missing
// record means the word has never been studied. WordID is not
// validated against the loaded vocabulary set; after a re-ingestion
// with deduplication enabled the ids may no longer line up, and stale
// records simply stop matching anything (known data-integrity gap).
type WordProgress struct {
	WordID         int        `json:"wordId"`
	Known          bool       `json:"known"`
	ReviewCount    int        `json:"reviewCount"`
	Difficulty     Difficulty `json:"difficulty"`
	LastReviewedAt time.Time  `json:"lastReviewed"`
	NextReviewAt   time.Time  `json:"nextReviewDate"`
}
