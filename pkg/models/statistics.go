package models

// OverallStats aggregates review progress across every word evaluated
// at least once.
type OverallStats struct {
	TotalWords         int `json:"totalWords"`
	KnownWords         int `json:"knownWords"`
	ReviewWords        int `json:"reviewWords"` // evaluated, currently not known
	CompletionRate     int `json:"completionRate"`
	AverageReviewCount int `json:"averageReviewCount"`
}
