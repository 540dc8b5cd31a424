// Package config collects every runtime setting from a .env file and
// environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Env              string        // "production" switches to production logging
	DataDir          string        // where the database and exports live
	DBPath           string        // SQLite file path
	VocabularyFile   string        // default workbook loaded at startup
	QuizSize         int           // default number of quiz questions
	ReminderInterval time.Duration // how often the reminder loop checks
	ReminderStart    int           // active-hours window for reminders
	ReminderEnd      int
}

// Load reads configuration from a .env file (if present) and
// environment variables, applying defaults when values are missing or
// invalid.
func Load() Config {
	// Ignore the error so the app still starts when .env is absent.
	_ = godotenv.Load()

	dataDir := envOr("KOTOBA_DATA_DIR", "data")
	return Config{
		Env:              envOr("KOTOBA_ENV", "development"),
		DataDir:          dataDir,
		DBPath:           envOr("KOTOBA_DB_PATH", dataDir+"/kotoba.db"),
		VocabularyFile:   envOr("KOTOBA_VOCABULARY_FILE", dataDir+"/vocabulary.xlsx"),
		QuizSize:         envIntOr("KOTOBA_QUIZ_SIZE", 10),
		ReminderInterval: envDurationOr("KOTOBA_REMINDER_INTERVAL", time.Hour),
		ReminderStart:    envIntOr("KOTOBA_REMINDER_START_HOUR", 8),
		ReminderEnd:      envIntOr("KOTOBA_REMINDER_END_HOUR", 22),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
