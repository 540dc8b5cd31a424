package database

import (
	"fmt"
	"time"

	"github.com/example/kotoba/pkg/models"
)

// ReviewLogRepository appends to and queries the review history.
type ReviewLogRepository struct {
	db *DB
}

// NewReviewLogRepository creates a repository over the given database.
func NewReviewLogRepository(db *DB) *ReviewLogRepository {
	return &ReviewLogRepository{db: db}
}

// Append records one evaluation.
func (r *ReviewLogRepository) Append(rec models.ReviewRecord) error {
	_, err := r.db.conn.Exec(`
		INSERT INTO review_log (word_id, known, difficulty, reviewed_at)
		VALUES (?, ?, ?, ?)
	`, rec.WordID, rec.Known, rec.Difficulty, rec.ReviewedAt)
	if err != nil {
		return fmt.Errorf("failed to append review record: %w", err)
	}
	return nil
}

// ForWord returns every recorded review of a word, oldest first.
func (r *ReviewLogRepository) ForWord(wordID int) ([]models.ReviewRecord, error) {
	var recs []models.ReviewRecord
	err := r.db.conn.Select(&recs, `
		SELECT id, word_id, known, difficulty, reviewed_at
		FROM review_log
		WHERE word_id = ?
		ORDER BY reviewed_at ASC, id ASC
	`, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review history: %w", err)
	}
	return recs, nil
}

// CountSince returns how many reviews happened at or after t.
func (r *ReviewLogRepository) CountSince(t time.Time) (int, error) {
	var count int
	err := r.db.conn.Get(&count, "SELECT COUNT(*) FROM review_log WHERE reviewed_at >= ?", t)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}
