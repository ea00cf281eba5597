package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExtractor(t *testing.T) {
	e := NewCSVExtractor()

	t.Run("header plus data rows", func(t *testing.T) {
		in := "Email,Address\na@b.com,1 Main St\nc@d.com,2 Oak Ave\n"
		table, err := e.Extract(context.Background(), strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"Email", "Address"}, table.Headers)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"a@b.com", "1 Main St"}, table.Rows[0])
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		table, err := e.Extract(context.Background(), strings.NewReader("Email,Address\n"))
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := e.Extract(context.Background(), strings.NewReader(""))
		assert.ErrorIs(t, err, ErrNoRows)
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		in := "Email,Address,Job Type\na@b.com,1 Main St\n"
		table, err := e.Extract(context.Background(), strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Len(t, table.Rows[0], 2)
	})
}
