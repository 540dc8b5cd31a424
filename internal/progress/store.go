package progress

import (
	"math"
	"sort"
	"time"

	"github.com/example/kotoba/pkg/models"
	"go.uber.org/zap"
)

// StateRepository persists the learner state. Load returns nil when no
// state has been saved yet.
type StateRepository interface {
	Load() (*models.LearnerState, error)
	Save(state *models.LearnerState) error
}

// ReviewLogger records individual evaluations in the append-only
// review log.
type ReviewLogger interface {
	Append(rec models.ReviewRecord) error
}

// Store owns the learner state. Its operations are total: they never
// fail on their own logic, and storage errors are logged rather than
// propagated so a flaky disk cannot corrupt the in-memory state.
// Every mutation is written through to the repository immediately.
type Store struct {
	log     *zap.Logger
	repo    StateRepository
	reviews ReviewLogger
	state   *models.LearnerState
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for deterministic scheduling in
// tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReviewLog attaches an append-only review log.
func WithReviewLog(rl ReviewLogger) Option {
	return func(s *Store) { s.reviews = rl }
}

// NewStore loads the persisted learner state, falling back to a fresh
// default state when none exists or loading fails.
func NewStore(log *zap.Logger, repo StateRepository, opts ...Option) *Store {
	s := &Store{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := repo.Load()
	if err != nil {
		log.Error("failed to load learner state, starting fresh", zap.Error(err))
	}
	if state == nil {
		state = models.NewLearnerState()
	} else if state.Version != models.StateVersion {
		// No migration logic exists; the state is used as-is.
		log.Warn("persisted state has a different schema version",
			zap.Int("found", state.Version),
			zap.Int("expected", models.StateVersion))
	}
	if state.Progress == nil {
		state.Progress = make(map[int]models.WordProgress)
	}
	s.state = state
	return s
}

// Evaluate records the outcome of reviewing a word: it creates the
// progress record on first contact, flips the known flag, bumps the
// review count and reschedules the next review. The updated record is
// returned.
func (s *Store) Evaluate(wordID int, known bool, difficulty models.Difficulty) models.WordProgress {
	if !difficulty.Valid() {
		difficulty = models.DifficultyMedium
	}

	now := s.now()
	rec := models.WordProgress{
		WordID:         wordID,
		Known:          known,
		ReviewCount:    s.state.Progress[wordID].ReviewCount + 1,
		Difficulty:     difficulty,
		LastReviewedAt: now,
		NextReviewAt:   NextReview(now, known, difficulty),
	}
	s.state.Progress[wordID] = rec
	s.persist()

	if s.reviews != nil {
		err := s.reviews.Append(models.ReviewRecord{
			WordID:     wordID,
			Known:      known,
			Difficulty: string(difficulty),
			ReviewedAt: now,
		})
		if err != nil {
			s.log.Warn("failed to append review log", zap.Int("word_id", wordID), zap.Error(err))
		}
	}

	return rec
}

// WordProgress returns the record for a word, if it has ever been
// evaluated.
func (s *Store) WordProgress(wordID int) (models.WordProgress, bool) {
	rec, ok := s.state.Progress[wordID]
	return rec, ok
}

// ProgressMap exposes the full progress map for read-only use by
// filtering and quiz selection.
func (s *Store) ProgressMap() map[int]models.WordProgress {
	return s.state.Progress
}

// DueForReview returns the ids of all words whose next review time has
// passed, most overdue first. Words never evaluated are not included.
func (s *Store) DueForReview() []int {
	now := s.now()

	var due []models.WordProgress
	for _, rec := range s.state.Progress {
		if !rec.NextReviewAt.After(now) {
			due = append(due, rec)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].WordID < due[j].WordID
	})

	ids := make([]int, len(due))
	for i, rec := range due {
		ids[i] = rec.WordID
	}
	return ids
}

// OverallStats aggregates progress across every evaluated word.
func (s *Store) OverallStats() models.OverallStats {
	stats := models.OverallStats{}
	reviewSum := 0

	for _, rec := range s.state.Progress {
		stats.TotalWords++
		reviewSum += rec.ReviewCount
		if rec.Known {
			stats.KnownWords++
		} else if rec.ReviewCount > 0 {
			stats.ReviewWords++
		}
	}

	if stats.TotalWords > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.KnownWords) / float64(stats.TotalWords) * 100))
		stats.AverageReviewCount = int(math.Round(float64(reviewSum) / float64(stats.TotalWords)))
	}
	return stats
}

// DayProgress returns the percentage of the given words currently
// marked known.
func (s *Store) DayProgress(words []models.Word) int {
	if len(words) == 0 {
		return 0
	}
	known := 0
	for _, w := range words {
		if rec, ok := s.state.Progress[w.ID]; ok && rec.Known {
			known++
		}
	}
	return int(math.Round(float64(known) / float64(len(words)) * 100))
}

// MarkDayCompleted adds a day to the completed set. Completion is an
// explicit learner action, never derived from word-level knowledge.
// Idempotent.
func (s *Store) MarkDayCompleted(day int) {
	for _, d := range s.state.CompletedDays {
		if d == day {
			return
		}
	}
	s.state.CompletedDays = append(s.state.CompletedDays, day)
	sort.Ints(s.state.CompletedDays)
	s.persist()
}

// CompletedDays returns the completed day numbers in ascending order.
// Entries may reference days no longer present after a re-ingestion;
// lookups treat those as no-ops.
func (s *Store) CompletedDays() []int {
	return append([]int(nil), s.state.CompletedDays...)
}

// IsDayCompleted reports whether the learner marked day as done.
func (s *Store) IsDayCompleted(day int) bool {
	for _, d := range s.state.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

// CurrentDay returns the learner's position in the study plan.
func (s *Store) CurrentDay() int { return s.state.CurrentDay }

// SetCurrentDay moves the learner's position in the study plan.
func (s *Store) SetCurrentDay(day int) {
	s.state.CurrentDay = day
	s.persist()
}

// DisplayMode returns the configured flashcard display mode.
func (s *Store) DisplayMode() models.DisplayMode { return s.state.DisplayMode }

// SetDisplayMode changes which form of the words flashcards show.
func (s *Store) SetDisplayMode(mode models.DisplayMode) {
	s.state.DisplayMode = mode
	s.persist()
}

// ShowGloss reports whether readings are shown alongside kanji.
func (s *Store) ShowGloss() bool { return s.state.ShowGloss }

// ToggleGloss flips the gloss visibility and returns the new value.
func (s *Store) ToggleGloss() bool {
	s.state.ShowGloss = !s.state.ShowGloss
	s.persist()
	return s.state.ShowGloss
}

// Reset wipes all progress: word records, completed days, current day,
// display mode and gloss visibility all return to their defaults.
func (s *Store) Reset() {
	s.state = models.NewLearnerState()
	s.persist()
}

func (s *Store) persist() {
	if err := s.repo.Save(s.state); err != nil {
		s.log.Error("failed to persist learner state", zap.Error(err))
	}
}
