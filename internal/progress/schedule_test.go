package progress

import (
	"testing"
	"time"

	"github.com/example/kotoba/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNextReview(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		known      bool
		difficulty models.Difficulty
		want       time.Time
	}{
		{"known easy", true, models.DifficultyEasy, now.Add(7 * 24 * time.Hour)},
		{"known medium", true, models.DifficultyMedium, now.Add(3 * 24 * time.Hour)},
		{"known hard", true, models.DifficultyHard, now.Add(24 * time.Hour)},
		{"unknown ignores difficulty", false, models.DifficultyEasy, now.Add(time.Hour)},
		{"unknown medium", false, models.DifficultyMedium, now.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextReview(now, tt.known, tt.difficulty))
		})
	}
}

func TestNextReview_HistoryIndependent(t *testing.T) {
	// The interval depends only on the latest evaluation, so the same
	// arguments always produce the same result.
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	first := NextReview(now, true, models.DifficultyMedium)
	second := NextReview(now, true, models.DifficultyMedium)
	assert.Equal(t, first, second)
}
