// Package samplepdf renders small single-page PDFs from plain text lines.
// It backs test fixtures and the samplepdf helper command.
package samplepdf

import (
	"errors"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoLines is returned when there is nothing to render.
var ErrNoLines = errors.New("samplepdf: no lines to render")

// Options tunes the rendered page. Zero values pick A4 portrait with
// 11pt Helvetica.
type Options struct {
	PageSize string
	FontSize float64
	// ExtraPages appends pages after the first, one line each.
	ExtraPages []string
}

// Write renders lines onto the first page of a new PDF at outPath. Blank lines
// become vertical gaps; lines starting with '#' are rendered bold.
func Write(outPath string, lines []string, opts Options) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	size := opts.PageSize
	if size == "" {
		size = "A4"
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 11
	}

	pdf := gofpdf.New("P", "mm", size, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.AddPage()

	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			text := strings.TrimSpace(strings.TrimLeft(s, "#"))
			if text == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", fontSize+3)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", fontSize)
			continue
		}
		pdf.CellFormat(0, 6, s, "", 1, "L", false, 0, "")
	}

	for _, extra := range opts.ExtraPages {
		pdf.AddPage()
		pdf.CellFormat(0, 6, extra, "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
