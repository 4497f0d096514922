// Package handlers contains the Gin handlers for the todo REST surface.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/models"
	"todoapp/internal/services"
	"todoapp/internal/store"
)

// TodoHandler exposes the todo collection over HTTP.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler returns all todos, newest first.
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler returns a single todo by id.
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	todo, err := h.todoService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Failed to fetch todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todo"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodoHandler creates a new todo.
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	created, err := h.todoService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todo text is required"})
			return
		}
		log.Printf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTodoHandler applies a partial update to a todo.
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updated, err := h.todoService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todo text is required"})
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		default:
			log.Printf("Failed to update todo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTodoHandler permanently deletes a todo.
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	err := h.todoService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Failed to delete todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// ClearCompletedHandler bulk-deletes every completed todo.
func (h *TodoHandler) ClearCompletedHandler(c *gin.Context) {
	count, err := h.todoService.ClearCompleted(c.Request.Context())
	if err != nil {
		log.Printf("Failed to delete completed todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete completed todos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Completed todos deleted successfully",
		"count":   count,
	})
}
