package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/kotoba/pkg/models"
)

// stateKey is the fixed namespaced key the learner state lives under.
const stateKey = "kotoba.learner_state"

// StateRepository stores the learner state as one versioned JSON
// record.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a repository over the given database.
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load reads the persisted learner state. Returns (nil, nil) when no
// state has ever been saved.
func (r *StateRepository) Load() (*models.LearnerState, error) {
	var row struct {
		Version int    `db:"version"`
		Data    string `db:"data"`
	}
	err := r.db.conn.Get(&row, "SELECT version, data FROM learner_state WHERE key = ?", stateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load learner state: %w", err)
	}

	var state models.LearnerState
	if err := json.Unmarshal([]byte(row.Data), &state); err != nil {
		return nil, fmt.Errorf("failed to decode learner state: %w", err)
	}
	state.Version = row.Version
	return &state, nil
}

// Save writes the learner state, replacing any previous record.
func (r *StateRepository) Save(state *models.LearnerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode learner state: %w", err)
	}

	_, err = r.db.conn.Exec(`
		INSERT INTO learner_state (key, version, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, stateKey, state.Version, string(data))
	if err != nil {
		return fmt.Errorf("failed to save learner state: %w", err)
	}
	return nil
}
