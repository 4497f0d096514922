// Package routes wires the HTTP surface together.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"todoapp/internal/config"
	"todoapp/internal/handlers"
	"todoapp/internal/services"
	"todoapp/internal/store"
)

// SetupRouter builds the Gin engine and registers every endpoint. The
// store handle is constructed by the caller and passed in.
func SetupRouter(todos store.TodoStore, cfg config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	todoService := services.NewTodoService(todos)
	todoHandler := handlers.NewTodoHandler(todoService)

	r.GET("/api/health", handlers.HealthHandler(todos))

	r.GET("/api/todos", todoHandler.GetTodosHandler)
	r.GET("/api/todos/:id", todoHandler.GetTodoByIDHandler)
	r.POST("/api/todos", todoHandler.CreateTodoHandler)
	r.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)
	r.DELETE("/api/todos", todoHandler.ClearCompletedHandler)

	return r
}
