package excel

import (
	"fmt"
	"math"

	"github.com/example/kotoba/pkg/models"
)

// Validate checks a vocabulary set against the content invariants and
// returns a report. It never fails: a set full of problems simply
// produces a report with Valid=false and the offending entries listed.
func Validate(set models.VocabularySet) models.ValidationReport {
	report := models.ValidationReport{Valid: true, Errors: []string{}}

	totalWords := 0
	for _, n := range sortedDays(set) {
		day := set[n]

		if len(day.Words) == 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("day %d: no words", n))
		}

		for i, w := range day.Words {
			if w.Reading == "" && w.Kanji == "" {
				report.Errors = append(report.Errors, fmt.Sprintf("day %d, word %d: missing reading and kanji", n, i+1))
			}
			if w.Meaning == "" {
				report.Errors = append(report.Errors, fmt.Sprintf("day %d, word %d: missing meaning", n, i+1))
			}
		}

		totalWords += len(day.Words)
	}

	report.Valid = len(report.Errors) == 0
	report.Stats = models.ValidationStats{
		TotalDays:  len(set),
		TotalWords: totalWords,
	}
	if len(set) > 0 {
		report.Stats.AverageWordsPerDay = int(math.Round(float64(totalWords) / float64(len(set))))
	}

	return report
}
