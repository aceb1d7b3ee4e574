package model

import (
	"task-management-api.com/task-management-api/internal/constants"
)

// Task with a zero ID has not been persisted yet; the store assigns
// the ID on first save and it never changes afterwards.
type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string               `gorm:"size:1000;not null" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
}
