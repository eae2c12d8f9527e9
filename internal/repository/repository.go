package repository

import (
	"context"
)

// Task is the persisted representation of a task.
type Task struct {
	ID       int64
	Name     string
	Priority int
}

// Repository defines the interface for database operations.
// Both the sqlite and mysql drivers implement it.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	FindTaskByName(ctx context.Context, name string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTaskPriority(ctx context.Context, id int64, priority int) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}
