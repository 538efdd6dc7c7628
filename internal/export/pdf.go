// Package export renders generated text as a paginated PDF document.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"

	"marketai/internal/model"
)

// Product is the name printed in export titles and filenames.
const Product = "MarketAI"

// Page geometry, in points from the top-left corner of an A4 page.
const (
	WrapWidth     = 110
	LineHeight    = 14.0
	MarginLeft    = 40.0
	TitleY        = 50.0
	BodyStartY    = 80.0
	ContinueY     = 50.0
	MarginBottom  = 60.0
	TitleFontSize = 14.0
	BodyFontSize  = 10.0
)

// documentDate is stamped into every PDF so output depends only on input.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Title builds the export title for a log.
func Title(module model.Module, logID int64) string {
	return fmt.Sprintf("%s Export - %s (ID: %d)", Product, strings.ToUpper(string(module)), logID)
}

// Filename builds the download filename for a log.
func Filename(module model.Module, logID int64) string {
	return fmt.Sprintf("%s_%s_%d.pdf", strings.ToLower(Product), module, logID)
}

// RenderPDF draws title in bold at the top of the first page followed by
// content wrapped at WrapWidth columns, adding pages as needed.
func RenderPDF(title, content string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(MarginLeft, TitleY, MarginLeft)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdf.GetPageSize()
	lowest := pageHeight - MarginBottom

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", TitleFontSize)
	pdf.Text(MarginLeft, TitleY, tr(title))

	pdf.SetFont("Helvetica", "", BodyFontSize)
	y := BodyStartY
	for _, line := range strings.Split(content, "\n") {
		for _, w := range Wrap(line, WrapWidth) {
			if y > lowest {
				pdf.AddPage()
				pdf.SetFont("Helvetica", "", BodyFontSize)
				y = ContinueY
			}
			pdf.Text(MarginLeft, y, tr(w))
			y += LineHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// tabSize is the column spacing of tab stops in exported text.
const tabSize = 8

// Wrap splits line into pieces of at most width runes, breaking between
// words. Spacing inside a piece is kept; whitespace at a break is dropped.
// Tabs expand to tabSize columns and words longer than width are split. A
// blank line yields no pieces.
func Wrap(line string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(expandSpace(line))

	var lines []string
	for i := 0; i < len(chunks); {
		if len(lines) > 0 && isBlank(chunks[i]) {
			i++
			continue
		}

		var cur []rune
		last := 0
		for i < len(chunks) && len(cur)+len(chunks[i]) <= width {
			cur = append(cur, chunks[i]...)
			last = len(chunks[i])
			i++
		}
		if i < len(chunks) && len(chunks[i]) > width {
			n := width - len(cur)
			cur = append(cur, chunks[i][:n]...)
			chunks[i] = chunks[i][n:]
			last = n
		}
		if tail := cur[len(cur)-last:]; isBlank(tail) {
			cur = cur[:len(cur)-last]
		}
		if len(cur) > 0 {
			lines = append(lines, string(cur))
		}
	}
	return lines
}

// expandSpace expands tabs to tab stops and turns every other whitespace
// rune into a single space.
func expandSpace(line string) []rune {
	out := make([]rune, 0, len(line))
	for _, r := range line {
		switch {
		case r == '\t':
			out = append(out, ' ')
			for len(out)%tabSize != 0 {
				out = append(out, ' ')
			}
		case unicode.IsSpace(r):
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return out
}

// splitChunks cuts runes into alternating runs of words and spaces.
func splitChunks(runes []rune) [][]rune {
	var chunks [][]rune
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || (runes[i] == ' ') != (runes[start] == ' ') {
			chunks = append(chunks, runes[start:i])
			start = i
		}
	}
	return chunks
}

func isBlank(chunk []rune) bool {
	for _, r := range chunk {
		if r != ' ' {
			return false
		}
	}
	return true
}
