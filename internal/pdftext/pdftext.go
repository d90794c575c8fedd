// Package pdftext reads plain text from the first page of a PDF.
package pdftext

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoPages is returned for documents without a readable first page.
var ErrNoPages = errors.New("pdftext: document has no pages")

// Reader returns the text lines of a document's first page, top to bottom.
type Reader interface {
	FirstPageLines(path string) ([]string, error)
}

// PDFReader is the Reader backed by github.com/ledongthuc/pdf. Each call opens
// the file and closes it before returning.
type PDFReader struct{}

func (PDFReader) FirstPageLines(path string) (lines []string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("pdftext: parse %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdftext: open %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return nil, ErrNoPages
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return nil, ErrNoPages
	}
	return groupRows(page.Content().Text), nil
}

// groupRows groups glyphs sharing a baseline into lines, top to bottom. Within
// a line glyphs are ordered by X; glyphs at the same X keep stream order,
// which is what fonts without a width table produce.
func groupRows(glyphs []pdf.Text) []string {
	var (
		order []float64
		rows  = map[float64]pdf.TextHorizontal{}
	)
	for _, g := range glyphs {
		y := math.Round(g.Y)
		if _, ok := rows[y]; !ok {
			order = append(order, y)
		}
		rows[y] = append(rows[y], g)
	}
	sort.Float64s(order)

	lines := make([]string, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		row := rows[order[i]]
		sort.SliceStable(row, func(a, b int) bool { return row[a].X < row[b].X })
		lines = append(lines, joinRow(row))
	}
	return lines
}

// joinRow concatenates the glyphs of a row, inserting a space where the
// layout leaves a visible gap but the content stream has none.
func joinRow(texts pdf.TextHorizontal) string {
	var b strings.Builder
	for i, t := range texts {
		if i > 0 {
			prev := texts[i-1]
			if prev.W > 0 && t.X-(prev.X+prev.W) > prev.FontSize*0.25 &&
				!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String()
}

// Text joins lines with newlines, the form used for whole-page searches.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}
