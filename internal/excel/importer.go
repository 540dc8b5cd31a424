package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/kotoba/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ParseFile reads a workbook from disk. CSV files are treated as a
// single-sheet workbook; everything else goes through the Excel parser.
func ParseFile(path string, opts Options) (models.VocabularySet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return parseCSVFile(path, opts)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return parseWorkbook(f, path, opts)
}

// Parse reads an Excel workbook from an in-memory byte stream.
func Parse(r io.Reader, opts Options) (models.VocabularySet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	return parseWorkbook(f, "", opts)
}

func parseWorkbook(f *excelize.File, path string, opts Options) (models.VocabularySet, error) {
	ing := newIngest(opts)
	set := models.VocabularySet{}

	for i, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to get rows of %q: %w", sheet, err)}
		}

		day := ing.buildDay(i+1, sheet, rows)
		if len(day.Words) > 0 {
			set[day.Number] = day
		}
	}

	return set, nil
}

func parseCSVFile(path string, opts Options) (models.VocabularySet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// A CSV is one day's worth of words; it has no sheet name, so the
	// day gets the default title.
	ing := newIngest(opts)
	set := models.VocabularySet{}
	day := ing.buildDay(1, "", rows)
	if len(day.Words) > 0 {
		set[day.Number] = day
	}
	return set, nil
}

// ingest carries the per-run state shared across sheets: the resolved
// column mapping, the global dedup set and the id counter.
type ingest struct {
	opts   Options
	cols   ColumnMapping
	seen   map[string]bool
	nextID int
}

func newIngest(opts Options) *ingest {
	return &ingest{
		opts:   opts,
		cols:   opts.columns(),
		seen:   make(map[string]bool),
		nextID: 1,
	}
}

func (g *ingest) buildDay(number int, sheetName string, rows [][]string) models.Day {
	day := models.Day{
		Number: number,
		Title:  dayTitle(sheetName, number),
	}

	for i, row := range rows {
		if g.opts.HasHeaderRow && i == 0 {
			continue
		}
		if word, ok := g.word(row); ok {
			day.Words = append(day.Words, word)
		}
	}

	return day
}

// word builds a candidate from one row, or reports that the row was
// filtered out.
func (g *ingest) word(row []string) (models.Word, bool) {
	if g.opts.SkipEmptyRows && rowEmpty(row) {
		return models.Word{}, false
	}

	reading := cell(row, g.cols.Reading)
	kanji := cell(row, g.cols.Kanji)
	meaning := cell(row, g.cols.Meaning)
	example := cell(row, g.cols.Example)

	if reading == "" && kanji != "" && g.opts.Readings != nil {
		reading = g.opts.Readings.Reading(kanji)
	}

	// Content invariant: at least one written form, and a meaning.
	if reading == "" && kanji == "" {
		return models.Word{}, false
	}
	if meaning == "" {
		return models.Word{}, false
	}

	if g.opts.RemoveDuplicates {
		key := dedupKey(reading, kanji, meaning)
		if g.seen[key] {
			return models.Word{}, false
		}
		g.seen[key] = true
	}

	word := models.Word{
		ID:      g.nextID,
		Reading: reading,
		Kanji:   kanji,
		Meaning: meaning,
		Example: example,
	}
	g.nextID++
	return word, true
}

// cell returns the trimmed value at index idx, or "" when the row is
// too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// dayTitle uses the sheet name as the day label, unless the name is
// just a generic "Sheet1"-style default.
func dayTitle(sheetName string, number int) string {
	if sheetName != "" && !strings.Contains(strings.ToLower(sheetName), "sheet") {
		return sheetName
	}
	return fmt.Sprintf("Day %d", number)
}

// dedupKey identifies a word across the whole workbook. Two words with
// the same reading, kanji and meaning (case-insensitively) are the same
// word no matter which day they appear on.
func dedupKey(reading, kanji, meaning string) string {
	return strings.ToLower(reading) + "|" + strings.ToLower(kanji) + "|" + strings.ToLower(meaning)
}
