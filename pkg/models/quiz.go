package models

// QuestionType identifies which pair of word fields a quiz question
// tests. The kanji-prompted types fall back to the reading when a word
// has no kanji form.
type QuestionType string

const (
	ReadingToMeaning QuestionType = "reading-to-meaning"
	KanjiToReading   QuestionType = "kanji-to-reading"
	MeaningToReading QuestionType = "meaning-to-reading"
	KanjiToMeaning   QuestionType = "kanji-to-meaning"
)

// AllQuestionTypes lists every supported question type.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{ReadingToMeaning, KanjiToReading, MeaningToReading, KanjiToMeaning}
}

// QuizQuestion is one generated multiple-choice question. Options
// always contains exactly four entries including CorrectAnswer; the
// distractors are not deduplicated against each other, so repeated
// meanings or readings in the source data can produce duplicate-looking
// options.
type QuizQuestion struct {
	Word          Word         `json:"word"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"question"`
	CorrectAnswer string       `json:"correctAnswer"`
	Options       []string     `json:"options"`
}

// QuizResult records the outcome of answering one question.
type QuizResult struct {
	QuestionIndex  int    `json:"questionIndex"`
	Correct        bool   `json:"correct"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	Word           Word   `json:"word"`
}

// QuizSummary is the final score of a completed quiz.
type QuizSummary struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
