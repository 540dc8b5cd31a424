package models

// DisplayMode controls which form of a word flashcards show.
type DisplayMode string

const (
	DisplayReading DisplayMode = "reading"
	DisplayKanji   DisplayMode = "kanji"
	DisplayMixed   DisplayMode = "mixed"
)

// StateVersion is embedded in the persisted learner state so future
// schema changes can be detected. No migration logic exists yet; a
// mismatched version is reported on load, not reconciled.
const StateVersion = 2

// LearnerState is the full persisted state of the single learner:
// position in the study plan, display preferences and per-word review
// progress. Every mutation is written back to durable storage
// synchronously.
type LearnerState struct {
	Version       int                  `json:"version"`
	CurrentDay    int                  `json:"currentDay"`
	CompletedDays []int                `json:"completedDays"`
	DisplayMode   DisplayMode          `json:"studyMode"`
	ShowGloss     bool                 `json:"showGloss"`
	Progress      map[int]WordProgress `json:"wordProgress"`
}

// NewLearnerState returns the default state for a fresh learner.
func NewLearnerState() *LearnerState {
	return &LearnerState{
		Version:       StateVersion,
		CurrentDay:    1,
		CompletedDays: []int{},
		DisplayMode:   DisplayMixed,
		ShowGloss:     true,
		Progress:      make(map[int]WordProgress),
	}
}
