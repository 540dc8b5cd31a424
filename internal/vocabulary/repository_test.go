package vocabulary

import (
	"math/rand"
	"testing"

	"github.com/example/kotoba/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() models.VocabularySet {
	return models.VocabularySet{
		1: {Number: 1, Title: "Day 1", Words: []models.Word{
			{ID: 1, Reading: "みず", Kanji: "水", Meaning: "water", Example: "水を飲みます。"},
			{ID: 2, Reading: "たべる", Kanji: "食べる", Meaning: "to eat"},
		}},
		2: {Number: 2, Title: "Day 2", Words: []models.Word{
			{ID: 3, Reading: "せんせい", Kanji: "先生", Meaning: "teacher"},
			{ID: 4, Reading: "みせ", Kanji: "店", Meaning: "shop"},
		}},
		3: {Number: 3, Title: "Day 3", Words: []models.Word{
			{ID: 5, Reading: "ともだち", Kanji: "友達", Meaning: "friend"},
		}},
	}
}

func TestRepository_Days(t *testing.T) {
	repo := New(testSet())

	assert.Equal(t, []int{1, 2, 3}, repo.DayNumbers())
	assert.Equal(t, 3, repo.TotalDays())

	day, ok := repo.Day(2)
	require.True(t, ok)
	assert.Equal(t, "Day 2", day.Title)

	_, ok = repo.Day(9)
	assert.False(t, ok)
}

func TestRepository_NilSet(t *testing.T) {
	repo := New(nil)
	assert.Zero(t, repo.TotalDays())
	assert.Empty(t, repo.AllWords())

	repo.Replace(testSet())
	assert.Equal(t, 3, repo.TotalDays())

	repo.Replace(nil)
	assert.Zero(t, repo.TotalDays())
}

func TestRepository_AllWords(t *testing.T) {
	words := New(testSet()).AllWords()
	require.Len(t, words, 5)
	// Day order, then row order.
	assert.Equal(t, 1, words[0].ID)
	assert.Equal(t, 5, words[4].ID)
}

func TestRepository_WordsForDays(t *testing.T) {
	repo := New(testSet())

	words := repo.WordsForDays([]int{3, 1})
	require.Len(t, words, 3)
	assert.Equal(t, 1, words[0].ID)
	assert.Equal(t, 5, words[2].ID)

	assert.Empty(t, repo.WordsForDays([]int{7}))
}

func TestRepository_WordsByIDs(t *testing.T) {
	words := New(testSet()).WordsByIDs([]int{4, 1, 99})
	require.Len(t, words, 2)
	assert.Equal(t, 1, words[0].ID)
	assert.Equal(t, 4, words[1].ID)
}

func TestRepository_Search(t *testing.T) {
	repo := New(testSet())

	tests := []struct {
		query string
		want  []int
	}{
		{"water", []int{1}},
		{"WATER", []int{1}},
		{"みず", []int{1}}, // reading
		{"みせ", []int{4}},
		{"先生", []int{3}},  // kanji
		{"飲みます", []int{1}}, // example
		{"er", []int{1, 3}}, // water, teacher
		{"zzz", nil},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []int
			for _, w := range repo.Search(tt.query) {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRepository_SampleForQuiz(t *testing.T) {
	repo := New(testSet())
	rnd := rand.New(rand.NewSource(1))

	words := repo.SampleForQuiz(rnd, 0, 3)
	assert.Len(t, words, 3)

	// Excluding a day removes its words from the pool entirely.
	words = repo.SampleForQuiz(rnd, 1, 10)
	require.Len(t, words, 3)
	for _, w := range words {
		assert.NotContains(t, []int{1, 2}, w.ID)
	}
}

func TestRepository_SampleForQuizDeterministic(t *testing.T) {
	repo := New(testSet())

	a := repo.SampleForQuiz(rand.New(rand.NewSource(42)), 0, 4)
	b := repo.SampleForQuiz(rand.New(rand.NewSource(42)), 0, 4)
	assert.Equal(t, a, b)
}

func TestRepository_FilterByLearningState(t *testing.T) {
	repo := New(testSet())
	progress := map[int]models.WordProgress{
		1: {WordID: 1, Known: true, ReviewCount: 2},
		2: {WordID: 2, Known: false, ReviewCount: 1},
	}
	days := []int{1, 2, 3}

	collect := func(filter LearningFilter) []int {
		var ids []int
		for _, w := range repo.FilterByLearningState(days, filter, progress) {
			ids = append(ids, w.ID)
		}
		return ids
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(FilterAll))
	assert.Equal(t, []int{1}, collect(FilterLearned))
	// Never-evaluated words count as unlearned but not as review.
	assert.Equal(t, []int{2, 3, 4, 5}, collect(FilterUnlearned))
	assert.Equal(t, []int{2}, collect(FilterReview))
}
