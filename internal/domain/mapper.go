package domain

import (
	"todo-tracker/internal/repository"
)

// TaskMapper handles conversion between domain and storage Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToStorage converts a domain Task to a storage Task.
func (m *TaskMapper) ToStorage(domainTask Task) repository.Task {
	return repository.Task{
		ID:       domainTask.ID,
		Name:     domainTask.Name,
		Priority: domainTask.Priority,
	}
}

// FromStorage converts a storage Task to a domain Task.
func (m *TaskMapper) FromStorage(dbTask repository.Task) Task {
	return Task{
		ID:       dbTask.ID,
		Name:     dbTask.Name,
		Priority: dbTask.Priority,
	}
}

// FromStorageSlice converts a slice of storage Tasks to domain Tasks.
func (m *TaskMapper) FromStorageSlice(dbTasks []*repository.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromStorage(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
