package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// cellGap is the horizontal whitespace, in PDF points, that separates
// two table cells. Word spacing inside a cell stays well under this.
const cellGap = 10.0

// PDFExtractor extracts tabular rows from PDF job sheets. Text runs
// are grouped into visual rows by the library, then split into cells
// wherever the horizontal gap between runs exceeds cellGap. Tables
// from every page are concatenated; the first row of the first page is
// the header row.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF table extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads the whole stream and extracts table rows from every page
func (e *PDFExtractor) Extract(ctx context.Context, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var rows [][]string
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageRows, err := page.GetTextByRow()
		if err != nil {
			// A page without extractable text is skipped, matching the
			// per-page tolerance of the extraction collaborator.
			continue
		}

		for _, pageRow := range pageRows {
			cells := splitCells(pageRow.Content)
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoTables
	}

	return &Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}

// splitCells groups the text runs of one visual row into cells. Runs
// arrive ordered left to right; a new cell starts when the gap from
// the previous run's right edge exceeds cellGap.
func splitCells(content pdf.TextHorizontal) []string {
	var cells []string
	var cell bytes.Buffer
	var rightEdge float64

	for i, text := range content {
		if i > 0 && text.X-rightEdge > cellGap {
			cells = append(cells, cell.String())
			cell.Reset()
		} else if i > 0 && text.X-rightEdge > 1 {
			// Runs inside a cell keep their natural word spacing.
			cell.WriteByte(' ')
		}
		cell.WriteString(text.S)
		rightEdge = text.X + text.W
	}

	if cell.Len() > 0 {
		cells = append(cells, cell.String())
	}
	return cells
}
