package ingest

import "strings"

// Row is one record of tabular data keyed by reconciled column name.
// Every accessor is defined for absent columns: Text returns "",
// Number returns 0.0, and Has reports false. Cells are trimmed on
// access; a cell of pure whitespace counts as absent.
type Row struct {
	cells map[string]string
}

// NewRow zips a reconciled header set with one data row. Extra cells
// beyond the header count are dropped; missing trailing cells leave
// their columns absent.
func NewRow(headers []string, cells []string) Row {
	m := make(map[string]string, len(headers))
	for i, h := range headers {
		if i >= len(cells) {
			break
		}
		m[h] = cells[i]
	}
	return Row{cells: m}
}

// Text returns the trimmed cell under col, or "" when absent
func (r Row) Text(col string) string {
	return strings.TrimSpace(r.cells[col])
}

// Number returns the cell under col coerced to a float, 0.0 when
// absent or unparsable
func (r Row) Number(col string) float64 {
	return Number(r.cells[col])
}

// Has reports whether col is present with a non-empty value after
// trimming. An empty string and a missing cell are treated alike.
func (r Row) Has(col string) bool {
	return r.Text(col) != ""
}
