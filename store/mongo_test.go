package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestMongoStore needs a reachable server, e.g.
// MONGO_TEST_URI=mongodb://localhost:27017 go test ./store/...
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	n := 0
	testStoreContract(t, func(t *testing.T) Store {
		n++
		db := client.Database(fmt.Sprintf("gardentrack_test_%d_%d", time.Now().UnixNano(), n))
		t.Cleanup(func() { db.Drop(context.Background()) })
		// Close is not called here: the client is shared across subtests.
		return NewMongoStore(db)
	})
}
