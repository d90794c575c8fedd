package extract

import (
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/pdftext"
)

const (
	// longDateLayout is "Month D, YYYY" with a full month name.
	longDateLayout = "January 2, 2006"
	// ISODateLayout is the canonical output form.
	ISODateLayout = "2006-01-02"
)

// dateRe finds the first "<word> <day>, <year>" candidate. The word is checked
// against month names only when parsing.
var dateRe = regexp.MustCompile(`(\w+ \d{1,2}, \d{4})`)

// DateExtractor finds the first long-form date on page one and returns it in
// ISO form.
type DateExtractor struct {
	src    pdftext.Reader
	logger zerolog.Logger
}

func NewDateExtractor(src pdftext.Reader, logger zerolog.Logger) *DateExtractor {
	if src == nil {
		src = pdftext.PDFReader{}
	}
	return &DateExtractor{src: src, logger: logger}
}

func (e *DateExtractor) Extract(path string) Field {
	lines, ok := firstPage(e.src, e.logger, path, "date")
	if !ok {
		return Absent
	}
	return e.fromText(pdftext.Text(lines))
}

func (e *DateExtractor) fromText(text string) Field {
	m := dateRe.FindString(text)
	if m == "" {
		e.logger.Debug().Msg("no date found on first page")
		return Absent
	}
	iso, err := NormalizeDate(m)
	if err != nil {
		e.logger.Error().Err(err).Str("date", m).Msg("error converting date")
		return Present("")
	}
	return Present(iso)
}

// NormalizeDate converts "March 3, 2024" to "2024-03-03". Month names are
// matched without regard to ASCII case; anything else, including an ISO date,
// is rejected.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(longDateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(ISODateLayout), nil
}
