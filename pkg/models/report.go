package models

// ValidationStats summarizes a vocabulary set for the validation report.
type ValidationStats struct {
	TotalDays          int `json:"totalDays"`
	TotalWords         int `json:"totalWords"`
	AverageWordsPerDay int `json:"averageWordsPerDay"`
}

// ValidationReport lists content problems found in a vocabulary set.
// Problems never abort ingestion; offending rows are already filtered
// out by the time the report is produced.
type ValidationReport struct {
	Valid  bool            `json:"isValid"`
	Errors []string        `json:"errors"`
	Stats  ValidationStats `json:"stats"`
}

// DuplicateDetail records one dedup key that occurred more than once,
// along with the days it appeared on.
type DuplicateDetail struct {
	Key  string `json:"key"`
	Days []int  `json:"days"`
}

// DuplicateReport is the result of analyzing a vocabulary set for
// repeated words across the whole workbook.
type DuplicateReport struct {
	TotalWords  int               `json:"totalWords"`
	UniqueWords int               `json:"uniqueWords"`
	Duplicates  int               `json:"duplicates"`
	PerDay      map[int]int       `json:"duplicatesByDay"`
	Details     []DuplicateDetail `json:"details"`
}
