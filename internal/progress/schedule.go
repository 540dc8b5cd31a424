// Package progress is the per-word review state machine and its
// durable single-learner state.
package progress

import (
	"time"

	"github.com/example/kotoba/pkg/models"
)

// Review intervals. A word the learner knows comes back after days
// depending on how hard it felt; a word they got wrong comes back
// within the hour.
const (
	intervalEasy    = 7 * 24 * time.Hour
	intervalMedium  = 3 * 24 * time.Hour
	intervalHard    = 24 * time.Hour
	intervalUnknown = time.Hour
)

// NextReview computes when a word is due again after an evaluation at
// time now. The difficulty only matters for known words; for unknown
// ones it is stored but ignored by scheduling. The result depends
// solely on the arguments, never on prior review history.
func NextReview(now time.Time, known bool, difficulty models.Difficulty) time.Time {
	if !known {
		return now.Add(intervalUnknown)
	}
	switch difficulty {
	case models.DifficultyEasy:
		return now.Add(intervalEasy)
	case models.DifficultyHard:
		return now.Add(intervalHard)
	default:
		return now.Add(intervalMedium)
	}
}
