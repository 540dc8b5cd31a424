package excel

import (
	"sort"

	"github.com/example/kotoba/pkg/models"
)

// Deduplicate reapplies the global dedup key to an already-parsed
// vocabulary set: the first occurrence of a word (in day order, then
// row order) wins, later ones are dropped, and surviving words are
// renumbered 1..n in that same order. Days left without words are
// omitted from the result. The input set is not modified.
//
// Word ids persisted before this pass (review progress) are NOT
// remapped; they refer to the old numbering and become orphaned.
func Deduplicate(set models.VocabularySet) models.VocabularySet {
	result := models.VocabularySet{}
	seen := make(map[string]bool)
	nextID := 1

	for _, n := range sortedDays(set) {
		day := set[n]
		kept := make([]models.Word, 0, len(day.Words))

		for _, w := range day.Words {
			key := dedupKey(w.Reading, w.Kanji, w.Meaning)
			if seen[key] {
				continue
			}
			seen[key] = true
			w.ID = nextID
			nextID++
			kept = append(kept, w)
		}

		if len(kept) > 0 {
			result[n] = models.Day{Number: day.Number, Title: day.Title, Words: kept}
		}
	}

	return result
}

// AnalyzeDuplicates reports how many words in the set share a dedup key
// with an earlier word, without changing anything. PerDay counts the
// repeated occurrences on each day; Details lists every key seen more
// than once together with the days it appears on.
func AnalyzeDuplicates(set models.VocabularySet) models.DuplicateReport {
	report := models.DuplicateReport{
		PerDay: make(map[int]int),
	}

	occurrences := make(map[string][]int)
	seen := make(map[string]bool)

	for _, n := range sortedDays(set) {
		for _, w := range set[n].Words {
			key := dedupKey(w.Reading, w.Kanji, w.Meaning)
			report.TotalWords++
			occurrences[key] = append(occurrences[key], n)
			if seen[key] {
				report.PerDay[n]++
			}
			seen[key] = true
		}
	}

	report.UniqueWords = len(occurrences)
	report.Duplicates = report.TotalWords - report.UniqueWords

	var keys []string
	for key, days := range occurrences {
		if len(days) > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		report.Details = append(report.Details, models.DuplicateDetail{
			Key:  key,
			Days: occurrences[key],
		})
	}

	return report
}

func sortedDays(set models.VocabularySet) []int {
	days := make([]int, 0, len(set))
	for n := range set {
		days = append(days, n)
	}
	sort.Ints(days)
	return days
}
