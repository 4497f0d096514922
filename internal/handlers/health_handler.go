package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/store"
)

// HealthHandler reports service liveness and store connectivity. It always
// answers 200; the database field carries the store state.
func HealthHandler(todos store.TodoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "Connected"
		if err := todos.Ping(c.Request.Context()); err != nil {
			database = "Disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "Server is running",
			"database": database,
		})
	}
}
