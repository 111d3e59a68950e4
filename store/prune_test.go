package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPruneOrphanHarvests(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	kept, err := s.InsertPlant(ctx, mustPlant(t, "Tomato", "Roma", "http://x/1.jpg", "2024-05-01"))
	require.NoError(t, err)
	gone := primitive.NewObjectID().Hex()

	for _, pid := range []string{kept, gone, gone, "garbage"} {
		_, err := s.InsertHarvest(ctx, mustHarvest(t, pid, "1", "2024-07-10"))
		require.NoError(t, err)
	}

	t.Run("dry run deletes nothing", func(t *testing.T) {
		res, err := PruneOrphanHarvests(ctx, s, true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{gone, "garbage"}, res.OrphanPlantIDs)
		assert.Zero(t, res.Deleted)

		ids, err := s.HarvestPlantIDs(ctx)
		require.NoError(t, err)
		assert.Len(t, ids, 3)
	})

	t.Run("prune removes only orphans", func(t *testing.T) {
		res, err := PruneOrphanHarvests(ctx, s, false)
		require.NoError(t, err)
		assert.EqualValues(t, 3, res.Deleted)

		ids, err := s.HarvestPlantIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{kept}, ids)

		res, err = PruneOrphanHarvests(ctx, s, false)
		require.NoError(t, err)
		assert.Empty(t, res.OrphanPlantIDs)
	})
}
