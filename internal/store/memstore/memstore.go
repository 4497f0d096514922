// Package memstore implements store.TodoStore in process memory. It backs
// the test suite and works as a throwaway dev backend; semantics match
// mongostore, including newest-first listing.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"todoapp/internal/models"
	"todoapp/internal/store"
)

type record struct {
	todo models.Todo
	seq  int // insertion order, breaks createdAt ties
}

// Store is an in-memory TodoStore safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]record
	nextSeq int
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]record)}
}

// List returns all items ordered by creation time, newest first.
func (s *Store) List(ctx context.Context) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]record, 0, len(s.records))
	for _, r := range s.records {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].todo.CreatedAt.Equal(recs[j].todo.CreatedAt) {
			return recs[i].todo.CreatedAt.After(recs[j].todo.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	todos := make([]models.Todo, 0, len(recs))
	for _, r := range recs {
		todos = append(todos, r.todo)
	}
	return todos, nil
}

// parseID rejects ids that are not syntactically uuids, mirroring how
// mongostore rejects non-ObjectID hex.
func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

// Get returns the item with the given id.
func (s *Store) Get(ctx context.Context, id string) (*models.Todo, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	todo := r.todo
	return &todo, nil
}

// Create inserts a new item under a fresh uuid.
func (s *Store) Create(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = uuid.NewString()
	s.records[todo.ID] = record{todo: todo, seq: s.nextSeq}
	s.nextSeq++
	return &todo, nil
}

// Update applies the patch and returns the updated item.
func (s *Store) Update(ctx context.Context, id string, patch store.Patch) (*models.Todo, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Text != nil {
		r.todo.Text = *patch.Text
	}
	if patch.Completed != nil {
		r.todo.Completed = *patch.Completed
	}
	r.todo.UpdatedAt = patch.UpdatedAt
	s.records[id] = r

	todo := r.todo
	return &todo, nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// DeleteCompleted removes every completed item and reports the count.
func (s *Store) DeleteCompleted(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, r := range s.records {
		if r.todo.Completed {
			delete(s.records, id)
			count++
		}
	}
	return count, nil
}

// Ping always succeeds; the store lives in the same process.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
