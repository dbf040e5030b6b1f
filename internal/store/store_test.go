package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestStore(t *testing.T) *Repositories {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "fleetsync.db")
	repos, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	repos := initTestStore(t)
	ctx := context.Background()

	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = repos.Vehicles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeed_PopulatesEmptyTables(t *testing.T) {
	repos := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Seed(ctx))

	nu, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, nu)

	nv, err := repos.Vehicles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, nv)

	admin, err := repos.Users.GetByName(ctx, "Byron")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	v, err := repos.Vehicles.GetByPlate(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "50.0", v.DailyRate.String())
	require.NotNil(t, v.ImageAssetID)
	assert.Nil(t, v.ImageURL)
}

func TestSeed_IsIdempotent(t *testing.T) {
	repos := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Seed(ctx))
	require.NoError(t, repos.Seed(ctx))

	nu, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, nu)
}
