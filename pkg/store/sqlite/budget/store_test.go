package budget

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) Store {
	db, err := sqlite.NewDB(sqlite.Settings{Path: filepath.Join(t.TempDir(), "finsight.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	s, err := NewStore(db)
	require.NoError(t, err)
	return s
}

func TestBudgetStore(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		id, err := s.Add(ctx, store.Budget{Category: "food", Amount: 1500000, Month: "2025-10"})
		require.NoError(t, err)

		budgets, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.Equal(t, id, budgets[0].ID)
		assert.Equal(t, "food", budgets[0].Category)
		assert.Equal(t, 1500000.0, budgets[0].Amount)
		assert.Equal(t, "2025-10", budgets[0].Month)
	})

	t.Run("delete", func(t *testing.T) {
		budgets, err := s.List(ctx)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, budgets[0].ID))
		assert.ErrorIs(t, s.Delete(ctx, budgets[0].ID), sqlite.ErrNotFound)
	})
}
