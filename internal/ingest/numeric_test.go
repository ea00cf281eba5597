package ingest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "42", 42},
		{"plain decimal", "12.5", 12.5},
		{"currency symbol", "$1,234.56", 1234.56},
		{"unit suffix", "850 sq ft", 850},
		{"surrounding whitespace", "  19.75  ", 19.75},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"no digits", "n/a", 0},
		{"two decimal points", "12.3.4", 0},
		// The filter keeps digits and '.' only, so a leading '-' is
		// dropped and negative results are impossible by construction.
		{"negative sign stripped", "-50", 50},
		{"mixed garbage", "abc9xyz", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.raw))
		})
	}
}

func TestNumberIdempotent(t *testing.T) {
	// Re-normalizing a normalized value must not change it
	inputs := []string{"$1,234.56", "850 sq ft", "42", "19.75"}
	for _, raw := range inputs {
		once := Number(raw)
		again := Number(strconv.FormatFloat(once, 'f', -1, 64))
		assert.Equal(t, once, again, "input %q", raw)
	}
}
