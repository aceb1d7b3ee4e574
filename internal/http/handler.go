package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-management-api.com/task-management-api/internal/constants"
	dto "task-management-api.com/task-management-api/internal/data_models"
	errs "task-management-api.com/task-management-api/internal/errors"
	"task-management-api.com/task-management-api/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TasksToResponse(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskToResponse(task))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewInvalidInput("invalid JSON payload")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.TaskToResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewInvalidInput("invalid JSON payload")
	}

	status, ok := constants.ParseTaskStatus(req.Status)
	if !ok {
		return errs.NewInvalidInput("status must be one of NEW, IN_PROGRESS, COMPLETED, REJECTED")
	}

	// req.ID is ignored; the path parameter is authoritative.
	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req.Description, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskToResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errs.NewInvalidInput("task id must be a positive integer")
	}
	return uint(id), nil
}
