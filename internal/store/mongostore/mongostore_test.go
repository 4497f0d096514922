package mongostore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/models"
	"todoapp/internal/store"
	"todoapp/internal/store/mongostore"
)

// setupStore connects to the MongoDB named by TEST_MONGO_URI and returns a
// store over a dropped-clean test database. Skipped when the variable is
// unset so the unit suite runs without infrastructure.
func setupStore(t *testing.T) *mongostore.Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongostore.Dial(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database("todoapp_test").Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, client.Database("todoapp_test").Drop(ctx))
	return mongostore.New(client, "todoapp_test")
}

func TestMongoCRUDRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	created, err := s.Create(ctx, models.Todo{Text: "Buy milk", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Text)
	assert.False(t, got.Completed)
	// Mongo stores millisecond precision.
	assert.True(t, got.CreatedAt.Equal(now))
	assert.True(t, got.UpdatedAt.Equal(now))

	completed := true
	updated, err := s.Update(ctx, created.ID, store.Patch{Completed: &completed, UpdatedAt: now.Add(time.Second)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Text)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMongoInvalidID(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "definitely-not-hex")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	err = s.Delete(ctx, "123")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}

func TestMongoListOrderAndClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	_, err := s.Create(ctx, models.Todo{Text: "oldest", Completed: true, CreatedAt: base, UpdatedAt: base})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Todo{Text: "middle", CreatedAt: base.Add(time.Second), UpdatedAt: base.Add(time.Second)})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Todo{Text: "newest", Completed: true, CreatedAt: base.Add(2 * time.Second), UpdatedAt: base.Add(2 * time.Second)})
	require.NoError(t, err)

	todos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "newest", todos[0].Text)
	assert.Equal(t, "middle", todos[1].Text)
	assert.Equal(t, "oldest", todos[2].Text)

	count, err := s.DeleteCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	todos, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "middle", todos[0].Text)
}
