// Package testutil provides shared helpers for driving the API through
// the real router in tests, backed by the in-memory store.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"todoapp/internal/config"
	"todoapp/internal/models"
	"todoapp/internal/routes"
	"todoapp/internal/store/memstore"
)

// SetupTestRouter builds a fresh router over an empty in-memory store.
func SetupTestRouter(t *testing.T) (*memstore.Store, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	todos := memstore.New()
	r := routes.SetupRouter(todos, config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return todos, r
}

// DoRequest performs one request against the router and returns the
// recorder. A nil body sends no payload.
func DoRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// CreateTestTodo creates a todo through the API and fails the test on any
// non-201 outcome.
func CreateTestTodo(t *testing.T, r *gin.Engine, text string, completed bool) models.Todo {
	t.Helper()

	w := DoRequest(t, r, http.MethodPost, "/api/todos", models.CreateTodoRequest{
		Text:      text,
		Completed: completed,
	})
	require.Equal(t, http.StatusCreated, w.Code, "expected todo to be created")

	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

// ListTodos fetches the full collection through the API.
func ListTodos(t *testing.T, r *gin.Engine) []models.Todo {
	t.Helper()

	w := DoRequest(t, r, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var todos []models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	return todos
}
