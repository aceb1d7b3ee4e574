package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "task-management-api.com/task-management-api/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save inserts when the task has no id yet and updates in place
// otherwise. On insert the database assigns the id.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.ID == 0 {
		if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
			return nil, err
		}
		return task, nil
	}

	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// FindByID returns (nil, nil) when no row matches.
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !task.Status.Valid() {
		return nil, fmt.Errorf("task %d has corrupt status %q", task.ID, task.Status)
	}
	return &task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}

	for i := range tasks {
		if !tasks[i].Status.Valid() {
			return nil, fmt.Errorf("task %d has corrupt status %q", tasks[i].ID, tasks[i].Status)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}
