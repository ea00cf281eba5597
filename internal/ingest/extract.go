package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Extraction errors. Both reject the whole batch before any row is
// processed.
var (
	// ErrNoTables is returned when a PDF contains no extractable table
	ErrNoTables = errors.New("no tables found in document")

	// ErrNoRows is returned when a document has no header row
	ErrNoRows = errors.New("document contains no rows")
)

// Table is tabular data extracted from a document: one header row and
// zero or more data rows. Rows may be ragged; missing trailing cells
// are handled by Row accessors.
type Table struct {
	Headers []string
	Rows    [][]string
}

// TableExtractor extracts a single table of rows with named columns
// from a raw document stream. PDF documents with tables on several
// pages yield the concatenation of all of them under the first table's
// header row.
type TableExtractor interface {
	Extract(ctx context.Context, r io.Reader) (*Table, error)
}

// CSVExtractor reads a standard header-plus-data-rows CSV document
type CSVExtractor struct{}

// NewCSVExtractor creates a CSV table extractor
func NewCSVExtractor() *CSVExtractor {
	return &CSVExtractor{}
}

// Extract parses all CSV records, treating the first as the header row
func (e *CSVExtractor) Extract(_ context.Context, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}
