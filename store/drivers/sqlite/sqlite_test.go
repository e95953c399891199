package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/blakekali/blakeprintz/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "blakeprintz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, "stock")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set(ctx, "stock", `[{"id":"1"}]`))
	v, err := s.Get(ctx, "stock")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"1"}]`, v)

	// Upsert replaces the whole blob.
	require.NoError(t, s.Set(ctx, "stock", `[]`))
	v, err = s.Get(ctx, "stock")
	require.NoError(t, err)
	require.Equal(t, `[]`, v)

	require.NoError(t, s.Delete(ctx, "stock"))
	_, err = s.Get(ctx, "stock")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, s.Delete(ctx, "stock"))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())

	require.NoError(t, s.Ping(context.Background()))
}

func TestValuesSurviveReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "blakeprintz.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Set(ctx, "users_initialized", "true"))
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.ApplyMigrations())

	v, err := s.Get(ctx, "users_initialized")
	require.NoError(t, err)
	require.Equal(t, "true", v)
}
