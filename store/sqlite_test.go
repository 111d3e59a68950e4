package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestSQLiteStore(t *testing.T) {
	testStoreContract(t, newSQLiteStore)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "garden.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	id, err := s.InsertPlant(ctx, mustPlant(t, "Tomato", "Roma", "http://x/1.jpg", "2024-05-01"))
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close(ctx)

	lookup, err := s.FindPlantByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Found, lookup.Status)
	assert.Equal(t, "Tomato", lookup.Plant.Name)
}

func TestSQLiteStoreClosedReturnsStorageError(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	_, err = s.FindAllPlants(ctx)
	var se *StorageError
	assert.ErrorAs(t, err, &se)
}
