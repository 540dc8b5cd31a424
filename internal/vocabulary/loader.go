package vocabulary

import (
	"fmt"

	"github.com/example/kotoba/internal/excel"
	"github.com/example/kotoba/pkg/models"
	"go.uber.org/zap"
)

// Loader runs the full ingestion path: extension gate, parse, duplicate
// analysis, deduplication and validation. The read-only load path only
// warns about content problems; the upload path additionally fails when
// nothing usable survived, so a bad upload never wipes out previously
// loaded data.
type Loader struct {
	log  *zap.Logger
	opts excel.Options
}

// NewLoader creates a loader with the given ingestion options.
func NewLoader(log *zap.Logger, opts excel.Options) *Loader {
	return &Loader{log: log, opts: opts}
}

// LoadFile reads a workbook and returns the cleaned vocabulary set
// along with its validation report. Content problems are logged, not
// fatal.
func (l *Loader) LoadFile(path string) (models.VocabularySet, models.ValidationReport, error) {
	set, report, err := l.ingest(path)
	if err != nil {
		return nil, models.ValidationReport{}, err
	}

	if !report.Valid {
		l.log.Warn("vocabulary file has validation warnings",
			zap.String("path", path),
			zap.Strings("errors", report.Errors))
	}
	return set, report, nil
}

// UploadFile is LoadFile for replacement datasets: a parsed workbook
// that yields no valid words at all is an error, since replacing the
// current set with it would leave the learner with nothing.
func (l *Loader) UploadFile(path string) (models.VocabularySet, models.ValidationReport, error) {
	set, report, err := l.ingest(path)
	if err != nil {
		return nil, models.ValidationReport{}, err
	}

	if report.Stats.TotalWords == 0 {
		return nil, report, fmt.Errorf("upload %s: %w", path, excel.ErrNoValidWords)
	}
	if !report.Valid {
		l.log.Warn("uploaded file has validation warnings",
			zap.String("path", path),
			zap.Strings("errors", report.Errors))
	}
	return set, report, nil
}

func (l *Loader) ingest(path string) (models.VocabularySet, models.ValidationReport, error) {
	if err := excel.CheckExtension(path); err != nil {
		return nil, models.ValidationReport{}, err
	}

	// Parse raw first so the duplicate analysis sees everything, then
	// deduplicate if configured.
	rawOpts := l.opts
	rawOpts.RemoveDuplicates = false

	set, err := excel.ParseFile(path, rawOpts)
	if err != nil {
		return nil, models.ValidationReport{}, err
	}

	analysis := excel.AnalyzeDuplicates(set)
	if analysis.Duplicates > 0 {
		l.log.Info("duplicate words in workbook",
			zap.String("path", path),
			zap.Int("total", analysis.TotalWords),
			zap.Int("duplicates", analysis.Duplicates))
	}

	if l.opts.RemoveDuplicates {
		set = excel.Deduplicate(set)
	}

	report := excel.Validate(set)
	l.log.Info("vocabulary loaded",
		zap.String("path", path),
		zap.Int("days", report.Stats.TotalDays),
		zap.Int("words", report.Stats.TotalWords))

	return set, report, nil
}
