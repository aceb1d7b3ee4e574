package dto

import (
	"task-management-api.com/task-management-api/internal/constants"
	model "task-management-api.com/task-management-api/internal/models"
)

type CreateTaskRequest struct {
	Description string `json:"description"`
}

// UpdateTaskRequest carries an id for symmetry with the response shape,
// but the path parameter is authoritative and the payload id is ignored.
type UpdateTaskRequest struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type TaskResponse struct {
	ID          uint                 `json:"id"`
	Description string               `json:"description"`
	Status      constants.TaskStatus `json:"status"`
}

func TaskToResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status,
	}
}

// TasksToResponse always returns a non-nil slice so an empty list
// serializes as [] rather than null.
func TasksToResponse(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskToResponse(&tasks[i]))
	}
	return out
}
