package domain

import "fmt"

// Priority bounds for a task. The range is part of the data model: every
// stored task carries a priority inside it.
const (
	PriorityMin = 1
	PriorityMax = 10
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID       int64
	Name     string
	Priority int
}

// NewTask creates a new Task with the given name and priority.
func NewTask(name string, priority int) Task {
	return Task{
		Name:     name,
		Priority: priority,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.Priority >= PriorityMin && t.Priority <= PriorityMax
}

// String returns a display representation of the task.
func (t Task) String() string {
	return fmt.Sprintf("%d. %s (priority %d)", t.ID, t.Name, t.Priority)
}
