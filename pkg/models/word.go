package models

// Word represents a single vocabulary entry to be learned.
// At least one of Reading and Kanji is non-empty, and Meaning is
// non-empty; rows violating this are filtered out during ingestion.
type Word struct {
	ID      int    `json:"id"`
	Reading string `json:"reading"` // phonetic form (hiragana)
	Kanji   string `json:"kanji"`   // logographic form, optional
	Meaning string `json:"meaning"`
	Example string `json:"example"` // optional example sentence
}

// Surface returns the form shown on a card for the given display mode.
// Kanji-only modes fall back to the reading when no kanji exists and
// vice versa.
func (w Word) Surface(mode DisplayMode) string {
	switch mode {
	case DisplayKanji:
		if w.Kanji != "" {
			return w.Kanji
		}
		return w.Reading
	case DisplayReading:
		if w.Reading != "" {
			return w.Reading
		}
		return w.Kanji
	default:
		if w.Kanji != "" && w.Reading != "" {
			return w.Kanji + "（" + w.Reading + "）"
		}
		if w.Kanji != "" {
			return w.Kanji
		}
		return w.Reading
	}
}
