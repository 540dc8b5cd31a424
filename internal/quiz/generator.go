// Package quiz builds multiple-choice questions from the vocabulary
// pool and scores the learner's answers, feeding results back into the
// progress store.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/example/kotoba/internal/vocabulary"
	"github.com/example/kotoba/pkg/models"
)

// ErrNoWordsAvailable means the configured day/filter selection left an
// empty word pool.
var ErrNoWordsAvailable = errors.New("no words available for quiz")

const (
	defaultQuestionCount = 10
	optionCount          = 4
)

// Config selects the word pool and question shape for one quiz.
type Config struct {
	// Days restricts the pool to these day numbers. Empty means every
	// day.
	Days []int
	// QuestionCount is the requested number of questions; the actual
	// count is capped by the pool size. Zero means the default of 10.
	QuestionCount int
	// Types is the set of enabled question types. Empty means all four.
	Types []models.QuestionType
	// Filter narrows the pool by learning state. Empty means all.
	Filter vocabulary.LearningFilter
	// Rand overrides the random source, for deterministic tests.
	Rand *rand.Rand
}

// ProgressSink is the part of the progress store the quiz feeds.
type ProgressSink interface {
	Evaluate(wordID int, known bool, difficulty models.Difficulty) models.WordProgress
	ProgressMap() map[int]models.WordProgress
}

// Generator builds quizzes over the current vocabulary.
type Generator struct {
	repo  *vocabulary.Repository
	store ProgressSink
}

// NewGenerator creates a quiz generator over the repository and
// progress store.
func NewGenerator(repo *vocabulary.Repository, store ProgressSink) *Generator {
	return &Generator{repo: repo, store: store}
}

// Generate builds an ordered question sequence for the given
// configuration.
func (g *Generator) Generate(cfg Config) ([]models.QuizQuestion, error) {
	types, err := resolveTypes(cfg.Types)
	if err != nil {
		return nil, err
	}

	count := cfg.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}

	filter := cfg.Filter
	if filter == "" {
		filter = vocabulary.FilterAll
	}

	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var pool []models.Word
	if len(cfg.Days) > 0 {
		pool = g.repo.FilterByLearningState(cfg.Days, filter, g.store.ProgressMap())
	} else {
		pool = g.repo.FilterByLearningState(g.repo.DayNumbers(), filter, g.store.ProgressMap())
	}
	if len(pool) == 0 {
		return nil, ErrNoWordsAvailable
	}

	shuffled := append([]models.Word(nil), pool...)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}

	questions := make([]models.QuizQuestion, 0, len(shuffled))
	for _, word := range shuffled {
		qt := types[rnd.Intn(len(types))]
		questions = append(questions, buildQuestion(word, pool, qt, rnd))
	}
	return questions, nil
}

// Score reports whether answer matches the question's correct answer.
// Comparison is exact: case-sensitive, no extra trimming beyond what
// ingestion already did.
func (g *Generator) Score(q models.QuizQuestion, answer string) bool {
	return answer == q.CorrectAnswer
}

// Submit scores an answer and records the outcome in the progress
// store: a correct answer marks the word known at easy difficulty, a
// wrong one marks it unknown.
func (g *Generator) Submit(index int, q models.QuizQuestion, answer string) models.QuizResult {
	correct := g.Score(q, answer)
	if correct {
		g.store.Evaluate(q.Word.ID, true, models.DifficultyEasy)
	} else {
		g.store.Evaluate(q.Word.ID, false, models.DifficultyMedium)
	}

	return models.QuizResult{
		QuestionIndex:  index,
		Correct:        correct,
		SelectedAnswer: answer,
		CorrectAnswer:  q.CorrectAnswer,
		Word:           q.Word,
	}
}

// Summary computes the final score of a finished quiz.
func Summary(results []models.QuizResult) models.QuizSummary {
	summary := models.QuizSummary{Total: len(results)}
	for _, r := range results {
		if r.Correct {
			summary.Correct++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = int(math.Round(float64(summary.Correct) / float64(summary.Total) * 100))
	}
	return summary
}

func resolveTypes(types []models.QuestionType) ([]models.QuestionType, error) {
	if len(types) == 0 {
		return models.AllQuestionTypes(), nil
	}
	known := make(map[models.QuestionType]bool)
	for _, t := range models.AllQuestionTypes() {
		known[t] = true
	}
	for _, t := range types {
		if !known[t] {
			return nil, fmt.Errorf("unknown question type: %s", t)
		}
	}
	return types, nil
}

func buildQuestion(word models.Word, pool []models.Word, qt models.QuestionType, rnd *rand.Rand) models.QuizQuestion {
	// Kanji-prompted questions fall back to the reading for kana-only
	// words.
	written := word.Kanji
	if written == "" {
		written = word.Reading
	}

	var prompt, correct string
	var field func(models.Word) string

	switch qt {
	case models.ReadingToMeaning:
		prompt = fmt.Sprintf("What does「%s」mean?", word.Reading)
		correct = word.Meaning
		field = func(w models.Word) string { return w.Meaning }
	case models.KanjiToReading:
		prompt = fmt.Sprintf("How is「%s」read?", written)
		correct = word.Reading
		field = func(w models.Word) string { return w.Reading }
	case models.MeaningToReading:
		prompt = fmt.Sprintf("Which reading means %q?", word.Meaning)
		correct = word.Reading
		field = func(w models.Word) string { return w.Reading }
	default: // models.KanjiToMeaning
		prompt = fmt.Sprintf("What does「%s」mean?", written)
		correct = word.Meaning
		field = func(w models.Word) string { return w.Meaning }
	}

	options := append(distractors(word, pool, field, rnd), correct)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return models.QuizQuestion{
		Word:          word,
		Type:          qt,
		Prompt:        prompt,
		CorrectAnswer: correct,
		Options:       options,
	}
}

// distractors picks three wrong options from other words' corresponding
// field. Values are not checked against the correct answer or each
// other, so source data with repeated meanings or readings can yield
// duplicate-looking options. Tiny pools are padded with lettered
// placeholders so a question always has four options.
func distractors(word models.Word, pool []models.Word, field func(models.Word) string, rnd *rand.Rand) []string {
	others := make([]models.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != word.ID {
			others = append(others, w)
		}
	}
	rnd.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	wrong := make([]string, 0, optionCount-1)
	for _, w := range others {
		if len(wrong) == optionCount-1 {
			break
		}
		wrong = append(wrong, field(w))
	}
	for len(wrong) < optionCount-1 {
		wrong = append(wrong, fmt.Sprintf("Option %c", 'A'+len(wrong)))
	}
	return wrong
}
