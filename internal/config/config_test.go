package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data/kotoba.db", cfg.DBPath)
	assert.Equal(t, "data/vocabulary.xlsx", cfg.VocabularyFile)
	assert.Equal(t, 10, cfg.QuizSize)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
	assert.Equal(t, 8, cfg.ReminderStart)
	assert.Equal(t, 22, cfg.ReminderEnd)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KOTOBA_ENV", "production")
	t.Setenv("KOTOBA_DATA_DIR", "/var/lib/kotoba")
	t.Setenv("KOTOBA_QUIZ_SIZE", "25")
	t.Setenv("KOTOBA_REMINDER_INTERVAL", "30m")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/var/lib/kotoba", cfg.DataDir)
	assert.Equal(t, "/var/lib/kotoba/kotoba.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.QuizSize)
	assert.Equal(t, 30*time.Minute, cfg.ReminderInterval)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("KOTOBA_QUIZ_SIZE", "lots")
	t.Setenv("KOTOBA_REMINDER_INTERVAL", "soon")

	cfg := Load()
	assert.Equal(t, 10, cfg.QuizSize)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
}
