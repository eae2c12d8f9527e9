package api

import (
	"context"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/validation"
)

// API defines the task store contract. All validation happens here, before
// any repository call, so a failed operation never leaves a partial write.
type API interface {
	// AddTask persists a new task and returns it with its assigned ID
	AddTask(ctx context.Context, name string, priority int) (*domain.Task, error)

	// GetTask returns a single task by ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// FindTaskByName returns the first task whose name contains the given text
	FindTaskByName(ctx context.Context, name string) (*domain.Task, error)

	// ListTasks returns all tasks ordered by ID ascending
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// UpdateTaskPriority overwrites the priority of an existing task
	UpdateTaskPriority(ctx context.Context, id int64, priority int) error

	// DeleteTask permanently removes a task
	DeleteTask(ctx context.Context, id int64) error
}

type apiImpl struct {
	repo          repository.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo repository.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewWithValidator creates a new API instance with a configured validator.
func NewWithValidator(repo repository.Repository, taskValidator *validation.TaskValidator) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name string, priority int) (*domain.Task, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskForCreation(name, priority); err != nil {
		return nil, err
	}

	// Get cleaned name
	cleanedName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	dbTask := &repository.Task{Name: cleanedName, Priority: priority}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromStorage(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromStorage(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) FindTaskByName(ctx context.Context, name string) (*domain.Task, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskName(name); err != nil {
		return nil, err
	}

	cleanedName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	dbTask, err := a.repo.FindTaskByName(ctx, cleanedName)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromStorage(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromStorageSlice(dbTasks), nil
}

func (a *apiImpl) UpdateTaskPriority(ctx context.Context, id int64, priority int) error {
	// Validate input
	if err := a.taskValidator.ValidatePriorityUpdate(id, priority); err != nil {
		return err
	}

	return a.repo.UpdateTaskPriority(ctx, id, priority)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	return a.repo.DeleteTask(ctx, id)
}
