package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/models"
	"todoapp/internal/services"
	"todoapp/internal/store/memstore"
)

func TestCreate_SetsBothTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := services.NewTodoService(memstore.New()).WithClock(func() time.Time { return now })

	created, err := svc.Create(context.Background(), models.CreateTodoRequest{Text: "  walk the dog  "})
	require.NoError(t, err)

	assert.Equal(t, "walk the dog", created.Text)
	assert.True(t, created.CreatedAt.Equal(now))
	assert.True(t, created.UpdatedAt.Equal(now), "createdAt and updatedAt must match at creation")
}

func TestCreate_RejectsEmptyText(t *testing.T) {
	todos := memstore.New()
	svc := services.NewTodoService(todos)

	for _, text := range []string{"", "  ", "\n\t"} {
		_, err := svc.Create(context.Background(), models.CreateTodoRequest{Text: text})
		assert.ErrorIs(t, err, services.ErrEmptyText)
	}

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := services.NewTodoService(memstore.New()).WithClock(func() time.Time { return now })

	created, err := svc.Create(context.Background(), models.CreateTodoRequest{Text: "stretch"})
	require.NoError(t, err)

	// Advance the clock and update only the completed flag.
	now = now.Add(42 * time.Minute)
	completed := true
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateTodoRequest{Completed: &completed})
	require.NoError(t, err)

	assert.Equal(t, "stretch", updated.Text)
	assert.True(t, updated.Completed)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "createdAt is set once and never modified")
	assert.True(t, updated.UpdatedAt.Equal(now), "every mutation stamps a fresh updatedAt")
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestUpdate_TrimsAndRejectsEmptyText(t *testing.T) {
	svc := services.NewTodoService(memstore.New())

	created, err := svc.Create(context.Background(), models.CreateTodoRequest{Text: "original"})
	require.NoError(t, err)

	text := "  edited  "
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateTodoRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	empty := "   "
	_, err = svc.Update(context.Background(), created.ID, models.UpdateTodoRequest{Text: &empty})
	assert.ErrorIs(t, err, services.ErrEmptyText)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text, "rejected update must leave the record alone")
}

func TestClearCompleted_CountsExactly(t *testing.T) {
	svc := services.NewTodoService(memstore.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateTodoRequest{Text: "active"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateTodoRequest{Text: "done a", Completed: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateTodoRequest{Text: "done b", Completed: true})
	require.NoError(t, err)

	count, err := svc.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "active", remaining[0].Text)

	count, err = svc.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "zero matches is a successful count of 0")
}
