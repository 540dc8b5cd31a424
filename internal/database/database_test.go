package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/example/kotoba/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := Connect(filepath.Join(t.TempDir(), "data", "kotoba.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStateRepository_RoundTrip(t *testing.T) {
	repo := NewStateRepository(testDB(t))

	// Nothing saved yet.
	state, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, state)

	saved := models.NewLearnerState()
	saved.CurrentDay = 4
	saved.CompletedDays = []int{1, 2, 3}
	saved.DisplayMode = models.DisplayKanji
	saved.Progress[12] = models.WordProgress{
		WordID:         12,
		Known:          true,
		ReviewCount:    3,
		Difficulty:     models.DifficultyEasy,
		LastReviewedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		NextReviewAt:   time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(saved))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, models.StateVersion, loaded.Version)
	assert.Equal(t, 4, loaded.CurrentDay)
	assert.Equal(t, []int{1, 2, 3}, loaded.CompletedDays)
	assert.Equal(t, models.DisplayKanji, loaded.DisplayMode)

	rec := loaded.Progress[12]
	assert.True(t, rec.Known)
	assert.Equal(t, 3, rec.ReviewCount)
	assert.True(t, rec.NextReviewAt.Equal(saved.Progress[12].NextReviewAt))
}

func TestStateRepository_SaveReplaces(t *testing.T) {
	repo := NewStateRepository(testDB(t))

	first := models.NewLearnerState()
	first.CurrentDay = 1
	require.NoError(t, repo.Save(first))

	second := models.NewLearnerState()
	second.CurrentDay = 9
	require.NoError(t, repo.Save(second))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.CurrentDay)
}

func TestReviewLogRepository(t *testing.T) {
	repo := NewReviewLogRepository(testDB(t))

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(models.ReviewRecord{
		WordID: 1, Known: false, Difficulty: "medium", ReviewedAt: base,
	}))
	require.NoError(t, repo.Append(models.ReviewRecord{
		WordID: 1, Known: true, Difficulty: "easy", ReviewedAt: base.Add(time.Hour),
	}))
	require.NoError(t, repo.Append(models.ReviewRecord{
		WordID: 2, Known: true, Difficulty: "hard", ReviewedAt: base.Add(2 * time.Hour),
	}))

	history, err := repo.ForWord(1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].Known)
	assert.True(t, history[1].Known)
	assert.True(t, history[0].ReviewedAt.Before(history[1].ReviewedAt))

	count, err := repo.CountSince(base.Add(30 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	empty, err := repo.ForWord(99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestConnect_CreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "kotoba.db")
	db, err := Connect(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
