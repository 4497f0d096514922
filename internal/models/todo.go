// Package models defines the wire-level shapes shared by the API service
// and its clients.
package models

import "time"

// Todo is a single task item as it appears on the wire. The id is an
// opaque string; the store's native identifier type never leaves the
// store packages. Timestamps serialize as RFC3339 strings.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTodoRequest is the body of POST /api/todos. Completed defaults to
// false when omitted.
type CreateTodoRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest is the body of PUT /api/todos/:id. Nil fields are left
// untouched (partial update).
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}
