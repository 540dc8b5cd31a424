package quiz

import (
	"math/rand"
	"testing"

	"github.com/example/kotoba/internal/vocabulary"
	"github.com/example/kotoba/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evaluation struct {
	wordID     int
	known      bool
	difficulty models.Difficulty
}

type fakeSink struct {
	progress    map[int]models.WordProgress
	evaluations []evaluation
}

func (f *fakeSink) Evaluate(wordID int, known bool, difficulty models.Difficulty) models.WordProgress {
	f.evaluations = append(f.evaluations, evaluation{wordID, known, difficulty})
	rec := models.WordProgress{WordID: wordID, Known: known, Difficulty: difficulty}
	if f.progress == nil {
		f.progress = make(map[int]models.WordProgress)
	}
	f.progress[wordID] = rec
	return rec
}

func (f *fakeSink) ProgressMap() map[int]models.WordProgress {
	if f.progress == nil {
		return map[int]models.WordProgress{}
	}
	return f.progress
}

func quizSet() models.VocabularySet {
	return models.VocabularySet{
		1: {Number: 1, Title: "Day 1", Words: []models.Word{
			{ID: 1, Reading: "みず", Kanji: "水", Meaning: "water"},
			{ID: 2, Reading: "たべる", Kanji: "食べる", Meaning: "to eat"},
			{ID: 3, Reading: "せんせい", Kanji: "先生", Meaning: "teacher"},
		}},
		2: {Number: 2, Title: "Day 2", Words: []models.Word{
			{ID: 4, Reading: "ともだち", Kanji: "友達", Meaning: "friend"},
			{ID: 5, Reading: "こんにちは", Meaning: "hello"},
		}},
	}
}

func newTestGenerator(set models.VocabularySet) (*Generator, *fakeSink) {
	sink := &fakeSink{}
	return NewGenerator(vocabulary.New(set), sink), sink
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func TestGenerate_QuestionShape(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	questions, err := gen.Generate(Config{Rand: seeded()})
	require.NoError(t, err)
	require.Len(t, questions, 5) // pool smaller than the default count

	valid := map[models.QuestionType]bool{}
	for _, qt := range models.AllQuestionTypes() {
		valid[qt] = true
	}

	for _, q := range questions {
		assert.True(t, valid[q.Type])
		assert.NotEmpty(t, q.Prompt)
		require.Len(t, q.Options, 4)

		// All field values in the pool are distinct, so the correct
		// answer must appear exactly once.
		occurrences := 0
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				occurrences++
			}
		}
		assert.Equal(t, 1, occurrences)
	}
}

func TestGenerate_CountCap(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	questions, err := gen.Generate(Config{QuestionCount: 2, Rand: seeded()})
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestGenerate_DayRestriction(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	questions, err := gen.Generate(Config{Days: []int{2}, Rand: seeded()})
	require.NoError(t, err)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Contains(t, []int{4, 5}, q.Word.ID)
	}
}

func TestGenerate_UnknownType(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	_, err := gen.Generate(Config{Types: []models.QuestionType{"guess-the-stroke-order"}})
	assert.Error(t, err)
}

func TestGenerate_EmptyPool(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	// Nothing is learned yet, so the learned filter leaves no words.
	_, err := gen.Generate(Config{Filter: vocabulary.FilterLearned, Rand: seeded()})
	assert.ErrorIs(t, err, ErrNoWordsAvailable)
}

func TestGenerate_LearningStateFilter(t *testing.T) {
	gen, sink := newTestGenerator(quizSet())
	sink.Evaluate(1, true, models.DifficultyEasy)

	questions, err := gen.Generate(Config{Filter: vocabulary.FilterLearned, Rand: seeded()})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].Word.ID)
}

func TestGenerate_KanjiFallback(t *testing.T) {
	gen, _ := newTestGenerator(models.VocabularySet{
		1: {Number: 1, Words: []models.Word{
			{ID: 1, Reading: "こんにちは", Meaning: "hello"},
			{ID: 2, Reading: "みず", Kanji: "水", Meaning: "water"},
		}},
	})

	questions, err := gen.Generate(Config{
		Types: []models.QuestionType{models.KanjiToMeaning},
		Rand:  seeded(),
	})
	require.NoError(t, err)

	// A kana-only word is prompted by its reading instead of kanji.
	for _, q := range questions {
		if q.Word.ID == 1 {
			assert.Contains(t, q.Prompt, "こんにちは")
		}
	}
}

func TestGenerate_PadsTinyPools(t *testing.T) {
	gen, _ := newTestGenerator(models.VocabularySet{
		1: {Number: 1, Words: []models.Word{
			{ID: 1, Reading: "みず", Kanji: "水", Meaning: "water"},
		}},
	})

	questions, err := gen.Generate(Config{Rand: seeded()})
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	require.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, q.CorrectAnswer)
	assert.Contains(t, q.Options, "Option A")
	assert.Contains(t, q.Options, "Option B")
	assert.Contains(t, q.Options, "Option C")
}

func TestGenerate_Deterministic(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())

	a, err := gen.Generate(Config{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	b, err := gen.Generate(Config{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScore_ExactMatch(t *testing.T) {
	gen, _ := newTestGenerator(quizSet())
	q := models.QuizQuestion{CorrectAnswer: "water"}

	assert.True(t, gen.Score(q, "water"))
	assert.False(t, gen.Score(q, "Water"))
	assert.False(t, gen.Score(q, "water "))
}

func TestSubmit_FeedsProgressStore(t *testing.T) {
	gen, sink := newTestGenerator(quizSet())
	q := models.QuizQuestion{
		Word:          models.Word{ID: 3, Reading: "せんせい", Kanji: "先生", Meaning: "teacher"},
		CorrectAnswer: "teacher",
	}

	result := gen.Submit(0, q, "teacher")
	assert.True(t, result.Correct)
	assert.Equal(t, "teacher", result.SelectedAnswer)

	result = gen.Submit(1, q, "friend")
	assert.False(t, result.Correct)
	assert.Equal(t, 1, result.QuestionIndex)

	require.Len(t, sink.evaluations, 2)
	assert.Equal(t, evaluation{3, true, models.DifficultyEasy}, sink.evaluations[0])
	assert.Equal(t, evaluation{3, false, models.DifficultyMedium}, sink.evaluations[1])
}

func TestSummary(t *testing.T) {
	assert.Equal(t, models.QuizSummary{}, Summary(nil))

	results := []models.QuizResult{
		{Correct: true},
		{Correct: true},
		{Correct: false},
	}
	summary := Summary(results)
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 67, summary.Percentage)
}
