package jp

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// ReadingProvider derives hiragana readings for surface forms that the
// source workbook only lists in kanji. It wraps a kagome morphological
// analyzer with the IPA dictionary.
type ReadingProvider struct {
	t *tokenizer.Tokenizer
}

// NewReadingProvider builds the tokenizer. Loading the IPA dictionary
// is relatively expensive, so callers should construct one provider and
// reuse it across a whole ingestion run.
func NewReadingProvider() (*ReadingProvider, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &ReadingProvider{t: t}, nil
}

// Reading returns the hiragana reading of surface, or "" when the
// dictionary has no reading for one of its tokens.
func (p *ReadingProvider) Reading(surface string) string {
	tokens := p.t.Tokenize(surface)
	var b strings.Builder
	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		// IPA feature 7 is the katakana reading.
		if len(features) <= 7 || features[7] == "*" {
			return ""
		}
		b.WriteString(features[7])
	}
	return KatakanaToHiragana(b.String())
}
