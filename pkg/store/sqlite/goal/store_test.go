package goal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (Store, *sql.DB) {
	db, err := sqlite.NewDB(sqlite.Settings{Path: filepath.Join(t.TempDir(), "finsight.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	s, err := NewStore(db)
	require.NoError(t, err)
	return s, db
}

func TestGoalStore(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("list preserves insertion order", func(t *testing.T) {
		_, err := s.Add(ctx, store.Goal{Name: "Dana Darurat", Target: 20000000, Current: 8000000})
		require.NoError(t, err)
		_, err = s.Add(ctx, store.Goal{Name: "Liburan", Target: 10000000, Current: 2500000})
		require.NoError(t, err)

		goals, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, "Dana Darurat", goals[0].Name)
		assert.Equal(t, "Liburan", goals[1].Name)
	})

	t.Run("add progress accumulates", func(t *testing.T) {
		goals, err := s.List(ctx)
		require.NoError(t, err)

		id := goals[0].ID
		require.NoError(t, s.AddProgress(ctx, id, 500000))
		require.NoError(t, s.AddProgress(ctx, id, 250000))

		goals, err = s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8750000.0, goals[0].Current)
	})

	t.Run("progress on a missing goal reports not found", func(t *testing.T) {
		err := s.AddProgress(ctx, 424242, 100)
		assert.ErrorIs(t, err, sqlite.ErrNotFound)
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		goals, err := s.List(ctx)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, goals[1].ID))
		assert.ErrorIs(t, s.Delete(ctx, goals[1].ID), sqlite.ErrNotFound)

		goals, err = s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 1)
	})
}
