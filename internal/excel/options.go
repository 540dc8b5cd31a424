// Package excel turns tabular workbooks (one sheet per study day) into
// the in-memory vocabulary model, and provides the companion
// deduplication, analysis, validation, export and sample-file
// operations.
package excel

import "github.com/example/kotoba/internal/jp"

// ColumnMapping assigns zero-based column indexes to word fields.
type ColumnMapping struct {
	Reading int
	Kanji   int
	Meaning int
	Example int
}

// DefaultColumns is the mapping used when auto-detection is enabled.
// Real header heuristics never materialized; the option is kept so
// callers that set it keep working, but it always resolves to this
// fixed layout.
func DefaultColumns() ColumnMapping {
	return ColumnMapping{Reading: 0, Kanji: 1, Meaning: 2, Example: 3}
}

// Options configures a single ingestion run. Every recognized option is
// listed here; there is no dynamic configuration.
type Options struct {
	// RemoveDuplicates drops the second and later occurrences of a
	// word across the whole workbook. Default true.
	RemoveDuplicates bool
	// SkipEmptyRows rejects rows whose cells are all blank. Default true.
	SkipEmptyRows bool
	// AutoDetectColumns resolves the column layout automatically.
	// Currently a declared placeholder: it falls back to
	// DefaultColumns. When false, Columns must be supplied. Default true.
	AutoDetectColumns bool
	// Columns is the explicit column mapping used when
	// AutoDetectColumns is false.
	Columns ColumnMapping
	// HasHeaderRow skips the first row of every sheet. Default true.
	HasHeaderRow bool
	// Readings, when set, fills in missing readings for kanji-only rows
	// from the morphological dictionary. Default nil (disabled).
	Readings *jp.ReadingProvider
}

// DefaultOptions returns the standard ingestion configuration.
func DefaultOptions() Options {
	return Options{
		RemoveDuplicates:  true,
		SkipEmptyRows:     true,
		AutoDetectColumns: true,
		Columns:           DefaultColumns(),
		HasHeaderRow:      true,
	}
}

// columns resolves the effective column mapping for this run.
func (o Options) columns() ColumnMapping {
	if o.AutoDetectColumns {
		return DefaultColumns()
	}
	return o.Columns
}
