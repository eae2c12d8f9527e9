package cli

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-tracker/internal/domain"
)

// MockAPI is a testify mock of the api.API interface
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) AddTask(ctx context.Context, name string, priority int) (*domain.Task, error) {
	args := m.Called(ctx, name, priority)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) FindTaskByName(ctx context.Context, name string) (*domain.Task, error) {
	args := m.Called(ctx, name)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) UpdateTaskPriority(ctx context.Context, id int64, priority int) error {
	args := m.Called(ctx, id, priority)
	return args.Error(0)
}

func (m *MockAPI) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
