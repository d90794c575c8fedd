package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/pdfvalidate/internal/samplepdf"
)

func TestPDFReader_FirstPageOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, samplepdf.Write(path, []string{
		"Acme Corporation Invoice",
		"Issued March 3, 2024",
	}, samplepdf.Options{ExtraPages: []string{"Second page text"}}))

	lines, err := PDFReader{}.FirstPageLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Acme Corporation Invoice", lines[0])
	assert.Equal(t, "Issued March 3, 2024", lines[1])

	text := Text(lines)
	assert.Contains(t, text, "Acme Corporation Invoice")
	assert.Contains(t, text, "March 3, 2024")
	assert.NotContains(t, text, "Second page text")
}

func TestPDFReader_OneLinePerRenderedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, samplepdf.Write(path, []string{
		"# Invoice",
		"Acme Corporation Invoice",
		"Invoice date: March 3, 2024",
	}, samplepdf.Options{}))

	lines, err := PDFReader{}.FirstPageLines(path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{
		"Invoice",
		"Acme Corporation Invoice",
		"Invoice date: March 3, 2024",
	}, lines)
}

func TestGroupRows(t *testing.T) {
	glyphs := []pdf.Text{
		// second line first in the stream
		{X: 10, Y: 779.06, S: "d"},
		{X: 10, Y: 779.06, S: "a"},
		{X: 10, Y: 779.06, S: "t"},
		{X: 10, Y: 779.06, S: "e"},
		// top line, drawn right part first
		{X: 40, Y: 798, S: "C"},
		{X: 40, Y: 798, S: "o"},
		{X: 10, Y: 798.2, S: "A"},
		{X: 10, Y: 798.2, S: "c"},
		{X: 10, Y: 798.2, S: "m"},
		{X: 10, Y: 798.2, S: "e"},
		{X: 10, Y: 798.2, S: " "},
	}
	assert.Equal(t, []string{"Acme Co", "date"}, groupRows(glyphs))
	assert.Empty(t, groupRows(nil))
}

func TestPDFReader_MissingFile(t *testing.T) {
	_, err := PDFReader{}.FirstPageLines(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestPDFReader_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := PDFReader{}.FirstPageLines(path)
	assert.Error(t, err)
}

func TestJoinRow(t *testing.T) {
	tests := []struct {
		name  string
		texts pdf.TextHorizontal
		want  string
	}{
		{
			name:  "no widths keeps glyphs adjacent",
			texts: pdf.TextHorizontal{{X: 0, S: "A"}, {X: 10, S: "B"}},
			want:  "AB",
		},
		{
			name: "gap inserts space",
			texts: pdf.TextHorizontal{
				{X: 0, W: 5, FontSize: 10, S: "A"},
				{X: 20, W: 5, FontSize: 10, S: "B"},
			},
			want: "A B",
		},
		{
			name: "tight glyphs",
			texts: pdf.TextHorizontal{
				{X: 0, W: 5, FontSize: 10, S: "A"},
				{X: 5, W: 5, FontSize: 10, S: "B"},
			},
			want: "AB",
		},
		{
			name: "explicit space not doubled",
			texts: pdf.TextHorizontal{
				{X: 0, W: 5, FontSize: 10, S: "A "},
				{X: 20, W: 5, FontSize: 10, S: "B"},
			},
			want: "A B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinRow(tt.texts))
		})
	}
}
