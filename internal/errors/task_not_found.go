package errors

import (
	"fmt"
	"net/http"
)

func NewTaskNotFound(id uint) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Task with id %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}
