// Package client is a thin HTTP client for the todo API, used by the
// terminal UI. Every call is a single request-response round trip with no
// retries or caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"todoapp/internal/models"
)

// APIError is a non-2xx response, carrying the server's short message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ClearResult is the body of the bulk clear-completed response.
type ClearResult struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// Health is the body of the health check response.
type Health struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Client talks to the todo API under a base URL like
// "http://localhost:8080/api".
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// List fetches the full collection, newest first.
func (c *Client) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Get fetches a single todo by id.
func (c *Client) Get(ctx context.Context, id string) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos/"+id, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create adds a new todo.
func (c *Client) Create(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update applies a partial update to a todo.
func (c *Client) Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodPut, "/todos/"+id, req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Delete removes a todo permanently.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil)
}

// ClearCompleted bulk-deletes every completed todo.
func (c *Client) ClearCompleted(ctx context.Context) (*ClearResult, error) {
	var res ClearResult
	if err := c.do(ctx, http.MethodDelete, "/todos", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckHealth fetches the service health report.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
