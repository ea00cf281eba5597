package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderMapReconcile(t *testing.T) {
	m := HeaderMapV1()

	t.Run("maps known defects", func(t *testing.T) {
		got := m.Reconcile([]string{"EmailClient", "lient Phone", "TTotal Gain"})
		assert.Equal(t, []string{ColEmail, ColClientPhone, ColTotalGain}, got)
	})

	t.Run("trims whitespace before matching", func(t *testing.T) {
		got := m.Reconcile([]string{"  EmailClient ", " Address "})
		assert.Equal(t, []string{ColEmail, "Address"}, got)
	})

	t.Run("passes unknown headers through", func(t *testing.T) {
		got := m.Reconcile([]string{"Email", "Mystery Column"})
		assert.Equal(t, []string{"Email", "Mystery Column"}, got)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := []string{"EmailClient"}
		m.Reconcile(in)
		assert.Equal(t, []string{"EmailClient"}, in)
	})
}

func TestNewHeaderMapCopiesDefects(t *testing.T) {
	defects := map[string]string{"Broken": ColEmail}
	m := NewHeaderMap("test", defects)

	// Mutating the source table after construction must not leak in
	defects["Broken"] = ColAddress
	got := m.Reconcile([]string{"Broken"})
	assert.Equal(t, []string{ColEmail}, got)
	assert.Equal(t, "test", m.Version())
}
