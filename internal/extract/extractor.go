// Package extract pulls single fields out of the first page of a PDF.
package extract

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/pdftext"
)

// Field is the outcome of one extraction. Found is false when nothing was
// located; Found with an empty Value means a match was located but could not
// be normalised.
type Field struct {
	Value string
	Found bool
}

// Absent is the zero Field.
var Absent = Field{}

// Present wraps a located value.
func Present(v string) Field { return Field{Value: v, Found: true} }

// String renders the field for log messages.
func (f Field) String() string {
	if !f.Found {
		return "<none>"
	}
	return f.Value
}

// Extractor defines a single-field extraction strategy. Implementations never
// panic and report every failure as a logged, absent Field.
type Extractor interface {
	Extract(path string) Field
}

// firstPage checks that path exists and returns its page-one lines. Failures
// are logged and reported as ok=false.
func firstPage(src pdftext.Reader, logger zerolog.Logger, path, field string) ([]string, bool) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error().Str("path", path).Msg("file not found")
		} else {
			logger.Error().Err(err).Str("path", path).Msg("cannot stat file")
		}
		return nil, false
	}
	lines, err := src.FirstPageLines(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Str("field", field).Msg("error extracting " + field)
		return nil, false
	}
	return lines, true
}
