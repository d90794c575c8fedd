package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/pdftext"
)

// CompanyNameExtractor returns the first page-one line matching a keyword
// pattern, compared case-insensitively.
type CompanyNameExtractor struct {
	pattern *regexp.Regexp
	src     pdftext.Reader
	logger  zerolog.Logger
}

// CompilePattern compiles a keyword as a case-insensitive regular expression.
func CompilePattern(keyword string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + keyword)
	if err != nil {
		return nil, fmt.Errorf("compile company keyword %q: %w", keyword, err)
	}
	return re, nil
}

func NewCompanyNameExtractor(keyword string, src pdftext.Reader, logger zerolog.Logger) (*CompanyNameExtractor, error) {
	re, err := CompilePattern(keyword)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = pdftext.PDFReader{}
	}
	return &CompanyNameExtractor{pattern: re, src: src, logger: logger}, nil
}

func (e *CompanyNameExtractor) Extract(path string) Field {
	lines, ok := firstPage(e.src, e.logger, path, "company name")
	if !ok {
		return Absent
	}
	if name, ok := MatchLine(e.pattern, lines); ok {
		e.logger.Debug().Str("company", name).Msg("company name line found")
		return Present(name)
	}
	e.logger.Debug().Str("pattern", e.pattern.String()).Msg("no line matches company keyword")
	return Absent
}

// MatchLine returns the first line re matches anywhere in, trimmed.
func MatchLine(re *regexp.Regexp, lines []string) (string, bool) {
	for _, line := range lines {
		if re.MatchString(line) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
