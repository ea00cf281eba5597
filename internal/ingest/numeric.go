// Package ingest contains the leaf pieces of the job-sheet import
// pipeline: numeric cell normalization, header reconciliation, row
// access, and tabular extraction from uploaded PDF and CSV documents.
package ingest

import (
	"strconv"
	"strings"
)

// Number coerces a raw cell value to a float. It is total: a missing
// or empty value, or anything that does not survive filtering and
// parsing, yields 0.0. Filtering keeps decimal digits and '.' only, so
// currency symbols, thousands separators, and unit suffixes are
// stripped ("$1,234.56" -> 1234.56). A filtered string with more than
// one '.' fails ParseFloat and yields 0.0.
func Number(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
