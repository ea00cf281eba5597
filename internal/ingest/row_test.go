package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowAccessors(t *testing.T) {
	headers := []string{ColEmail, ColHourlyWage, ColAdditionalServices}
	row := NewRow(headers, []string{" a@b.com ", "$25.50", ""})

	assert.Equal(t, "a@b.com", row.Text(ColEmail))
	assert.Equal(t, 25.5, row.Number(ColHourlyWage))

	// An empty cell and an absent column behave alike
	assert.False(t, row.Has(ColAdditionalServices))
	assert.False(t, row.Has(ColAddress))
	assert.Equal(t, "", row.Text(ColAddress))
	assert.Equal(t, 0.0, row.Number(ColAddress))
}

func TestNewRowRaggedRows(t *testing.T) {
	headers := []string{ColEmail, ColAddress, ColJobType}

	t.Run("missing trailing cells leave columns absent", func(t *testing.T) {
		row := NewRow(headers, []string{"a@b.com"})
		assert.True(t, row.Has(ColEmail))
		assert.False(t, row.Has(ColAddress))
		assert.False(t, row.Has(ColJobType))
	})

	t.Run("extra cells beyond the headers are dropped", func(t *testing.T) {
		row := NewRow(headers, []string{"a@b.com", "1 Main St", "Interior", "extra"})
		assert.Equal(t, "Interior", row.Text(ColJobType))
	})

	t.Run("whitespace-only cell counts as absent", func(t *testing.T) {
		row := NewRow(headers, []string{"a@b.com", "   "})
		assert.False(t, row.Has(ColAddress))
	})
}
