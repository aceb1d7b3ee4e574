package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-management-api.com/task-management-api/internal/http/middlewares"
)

type RouteConfig struct {
	AuthUsername     string
	AuthPasswordHash string
}

// Register mounts the task routes under /api. Every route requires
// basic auth; state-changing routes additionally require the
// anti-forgery token issued on safe requests.
func Register(e *echo.Echo, h *Handler, cfg RouteConfig) {
	api := e.Group("/api",
		middleware.BasicAuth(cfg.AuthUsername, cfg.AuthPasswordHash),
		middleware.CSRF(),
	)

	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.POST("/tasks", h.CreateTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
}
