package models

// Day is one study unit, sourced from one sheet of the input workbook.
type Day struct {
	Number int    `json:"day"`
	Title  string `json:"title"`
	Words  []Word `json:"words"`
}

// VocabularySet maps day numbers to their study units. Day numbers
// follow sheet order in the source workbook; sheets that produced no
// valid words leave a gap rather than an empty entry.
type VocabularySet map[int]Day
