// Package services holds the business rules for todo items.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"todoapp/internal/models"
	"todoapp/internal/store"
)

// ErrEmptyText is returned when a supplied text is empty after trimming.
var ErrEmptyText = errors.New("todo text is required")

// TodoService applies validation and timestamping on top of a TodoStore.
type TodoService struct {
	todos store.TodoStore
	now   func() time.Time
}

// NewTodoService creates a TodoService over the given store.
func NewTodoService(todos store.TodoStore) *TodoService {
	return &TodoService{todos: todos, now: time.Now}
}

// WithClock replaces the time source. Tests use this to pin timestamps.
func (s *TodoService) WithClock(now func() time.Time) *TodoService {
	s.now = now
	return s
}

// List returns all items, newest first.
func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.todos.List(ctx)
}

// Get returns the item with the given id.
func (s *TodoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	return s.todos.Get(ctx, id)
}

// Create trims the text, rejects empty text, and persists a new item with
// createdAt and updatedAt both set to now.
func (s *TodoService) Create(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	now := s.now().UTC()
	return s.todos.Create(ctx, models.Todo{
		Text:      text,
		Completed: req.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Update applies only the fields present in the request. Text, when
// present, is trimmed and must not end up empty. Every update stamps a
// fresh updatedAt as part of the operation itself.
func (s *TodoService) Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	patch := store.Patch{
		Completed: req.Completed,
		UpdatedAt: s.now().UTC(),
	}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return nil, ErrEmptyText
		}
		patch.Text = &text
	}
	return s.todos.Update(ctx, id, patch)
}

// Delete removes the item permanently.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.todos.Delete(ctx, id)
}

// ClearCompleted removes every completed item and reports how many were
// removed. Zero matches is a successful count of 0.
func (s *TodoService) ClearCompleted(ctx context.Context) (int64, error) {
	return s.todos.DeleteCompleted(ctx)
}
