// Package store defines the persistence contract for todo items.
package store

import (
	"context"
	"errors"
	"time"

	"todoapp/internal/models"
)

// ErrNotFound is returned when an id is well-formed but matches no record.
var ErrNotFound = errors.New("todo not found")

// ErrInvalidID is returned when an id is not syntactically valid for the
// backing store.
var ErrInvalidID = errors.New("invalid todo id")

// Patch describes a partial update. Nil fields are left untouched.
// UpdatedAt is always written; the caller supplies it so that the
// timestamp refresh is an explicit part of the operation rather than a
// store-side hook.
type Patch struct {
	Text      *string
	Completed *bool
	UpdatedAt time.Time
}

// TodoStore is the document-store contract the API service is built
// against. List returns items newest-first by creation time.
type TodoStore interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (*models.Todo, error)
	Update(ctx context.Context, id string, patch Patch) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
	// DeleteCompleted removes every completed item and reports how many
	// were removed. Zero matches is not an error.
	DeleteCompleted(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
