// Package jp holds small Japanese-script helpers used by the ingestion
// pipeline and the card display logic.
package jp

import "strings"

// IsHiragana reports whether s is non-empty and consists only of
// hiragana characters.
func IsHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x3040 || r > 0x309F {
			return false
		}
	}
	return true
}

// IsKatakana reports whether s is non-empty and consists only of
// katakana characters.
func IsKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x30A0 || r > 0x30FF {
			return false
		}
	}
	return true
}

// IsKanji reports whether s is non-empty and consists only of CJK
// ideographs.
func IsKanji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x4E00 || r > 0x9FAF {
			return false
		}
	}
	return true
}

// KatakanaToHiragana converts katakana characters to their hiragana
// equivalents, leaving everything else untouched. Dictionary readings
// come back in katakana, while the vocabulary model stores hiragana.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		// Only the exchangeable range; prolonged sound marks and
		// punctuation stay as they are.
		if r >= 0x30A1 && r <= 0x30F6 {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Furigana renders a word with its reading attached, e.g. 勉強(べんきょう).
// Either part may be empty, in which case the other is returned as is.
func Furigana(kanji, reading string) string {
	if kanji == "" {
		return reading
	}
	if reading == "" {
		return kanji
	}
	return kanji + "(" + reading + ")"
}
