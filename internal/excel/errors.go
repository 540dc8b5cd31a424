package excel

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExtension rejects a file before any parse attempt.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// ErrNoValidWords marks an upload whose workbook parsed but yielded no
// usable vocabulary at all.
var ErrNoValidWords = errors.New("workbook contains no valid words")

// ParseError reports workbook bytes that could not be read as a
// spreadsheet. Content-level problems (empty fields, duplicates) are
// filtered silently and never produce a ParseError.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse workbook: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// supported spreadsheet extensions, checked case-insensitively.
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// CheckExtension validates a file name before parsing. Upload paths
// call this first so a wrong file type never reaches the parser.
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !supportedExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}
	return nil
}
