// Package vocabulary is the query surface over the loaded vocabulary
// set. The repository is read-only between ingestions; an upload
// replaces its contents wholesale.
package vocabulary

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/example/kotoba/pkg/models"
)

// LearningFilter selects words by their review state.
type LearningFilter string

const (
	FilterAll       LearningFilter = "all"
	FilterLearned   LearningFilter = "learned"
	FilterUnlearned LearningFilter = "unlearned"
	FilterReview    LearningFilter = "review" // evaluated and currently not known
)

// Repository holds the current vocabulary set in memory.
type Repository struct {
	set models.VocabularySet
}

// New creates a repository over the given set. A nil set is treated as
// empty.
func New(set models.VocabularySet) *Repository {
	if set == nil {
		set = models.VocabularySet{}
	}
	return &Repository{set: set}
}

// Replace swaps in a new vocabulary set, discarding the old one.
func (r *Repository) Replace(set models.VocabularySet) {
	if set == nil {
		set = models.VocabularySet{}
	}
	r.set = set
}

// Set returns the underlying vocabulary set, for export.
func (r *Repository) Set() models.VocabularySet {
	return r.set
}

// Day returns the study unit for day n.
func (r *Repository) Day(n int) (models.Day, bool) {
	day, ok := r.set[n]
	return day, ok
}

// DayNumbers lists all present day numbers in ascending order.
func (r *Repository) DayNumbers() []int {
	days := make([]int, 0, len(r.set))
	for n := range r.set {
		days = append(days, n)
	}
	sort.Ints(days)
	return days
}

// TotalDays returns how many days the set contains.
func (r *Repository) TotalDays() int {
	return len(r.set)
}

// AllWords flattens every day's words in day-number order.
func (r *Repository) AllWords() []models.Word {
	var words []models.Word
	for _, n := range r.DayNumbers() {
		words = append(words, r.set[n].Words...)
	}
	return words
}

// WordsForDays concatenates the words of the given days in day-number
// order. Unknown day numbers are skipped.
func (r *Repository) WordsForDays(days []int) []models.Word {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)

	var words []models.Word
	for _, n := range sorted {
		if day, ok := r.set[n]; ok {
			words = append(words, day.Words...)
		}
	}
	return words
}

// WordsByIDs returns the words whose ids appear in ids, in day order.
func (r *Repository) WordsByIDs(ids []int) []models.Word {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var words []models.Word
	for _, w := range r.AllWords() {
		if want[w.ID] {
			words = append(words, w)
		}
	}
	return words
}

// Search does a case-insensitive substring match across reading, kanji,
// meaning and example of every word. An empty or whitespace-only query
// matches nothing.
func (r *Repository) Search(query string) []models.Word {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []models.Word
	for _, w := range r.AllWords() {
		if strings.Contains(strings.ToLower(w.Reading), query) ||
			strings.Contains(strings.ToLower(w.Kanji), query) ||
			strings.Contains(strings.ToLower(w.Meaning), query) ||
			strings.Contains(strings.ToLower(w.Example), query) {
			results = append(results, w)
		}
	}
	return results
}

// SampleForQuiz returns up to count random words, optionally excluding
// one day (pass 0 to include everything). The random source is supplied
// by the caller so quizzes can be made deterministic in tests.
func (r *Repository) SampleForQuiz(rnd *rand.Rand, excludeDay, count int) []models.Word {
	var pool []models.Word
	for _, n := range r.DayNumbers() {
		if excludeDay != 0 && n == excludeDay {
			continue
		}
		pool = append(pool, r.set[n].Words...)
	}

	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// FilterByLearningState narrows the words of the given days by their
// review state. A missing progress record counts as unlearned.
func (r *Repository) FilterByLearningState(days []int, filter LearningFilter, progress map[int]models.WordProgress) []models.Word {
	words := r.WordsForDays(days)

	switch filter {
	case FilterLearned:
		return filterWords(words, func(w models.Word) bool {
			p, ok := progress[w.ID]
			return ok && p.Known
		})
	case FilterUnlearned:
		return filterWords(words, func(w models.Word) bool {
			p, ok := progress[w.ID]
			return !ok || !p.Known
		})
	case FilterReview:
		return filterWords(words, func(w models.Word) bool {
			p, ok := progress[w.ID]
			return ok && !p.Known
		})
	default:
		return words
	}
}

func filterWords(words []models.Word, keep func(models.Word) bool) []models.Word {
	var out []models.Word
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
