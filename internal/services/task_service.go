package services

import (
	"context"
	"strings"

	"task-management-api.com/task-management-api/internal/constants"
	errs "task-management-api.com/task-management-api/internal/errors"
	model "task-management-api.com/task-management-api/internal/models"
)

// TaskStore is the persistence seam. FindByID returns (nil, nil) when no
// row matches; Save assigns an id when the task does not carry one yet.
type TaskStore interface {
	Save(ctx context.Context, task *model.Task) (*model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	FindAll(ctx context.Context) ([]model.Task, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Classify(err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Classify(err)
	}
	if task == nil {
		return nil, errs.NewTaskNotFound(id)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, description string) (*model.Task, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	task := &model.Task{
		Description: description,
		Status:      constants.StatusNew,
	}

	saved, err := s.store.Save(ctx, task)
	if err != nil {
		return nil, errs.Classify(err)
	}
	return saved, nil
}

// UpdateTask validates before the existence check, so a blank
// description against a nonexistent id reports invalid input, not
// not-found. The id always comes from the caller, never the payload.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, description string, status constants.TaskStatus) (*model.Task, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errs.NewInvalidInput("status must be one of NEW, IN_PROGRESS, COMPLETED, REJECTED")
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Classify(err)
	}
	if existing == nil {
		return nil, errs.NewTaskNotFound(id)
	}

	existing.Description = description
	existing.Status = status

	saved, err := s.store.Save(ctx, existing)
	if err != nil {
		return nil, errs.Classify(err)
	}
	return saved, nil
}

// DeleteTask checks existence explicitly rather than inferring it from
// the delete's affected-row count.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return errs.Classify(err)
	}
	if !exists {
		return errs.NewTaskNotFound(id)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		return errs.Classify(err)
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewInvalidInput("description must not be blank")
	}
	return nil
}
