package service

import (
	"context"
	"testing"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClientService(t *testing.T) *ClientService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewClientService(repository.NewClientRepository(db), zap.NewNop())
}

func TestClientServiceCRUD(t *testing.T) {
	svc := newTestClientService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateClientRequest{
		Name:  "Ann Lee",
		Email: "ann@example.com",
		Phone: "555-0101",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, &domain.CreateClientRequest{
			Name:  "Ann Again",
			Email: "ann@example.com",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("get returns the record", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", got.Name)
		assert.Equal(t, "ann@example.com", got.Email)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, &domain.UpdateClientRequest{
			Name:  "Ann B. Lee",
			Email: "ann@example.com",
			Phone: "555-0199",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann B. Lee", updated.Name)
		assert.Equal(t, "555-0199", updated.Phone)
	})

	t.Run("list with search", func(t *testing.T) {
		page, err := svc.List(ctx, 1, 20, "ann")
		require.NoError(t, err)
		assert.EqualValues(t, 1, page.Total)
	})

	t.Run("delete then get not found", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err := svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrClientNotFound)

		err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestClientServiceNotFound(t *testing.T) {
	svc := newTestClientService(t)

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Update(context.Background(), 999, &domain.UpdateClientRequest{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
