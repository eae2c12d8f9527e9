package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", 3)

	assert.Equal(t, int64(0), task.ID)
	assert.Equal(t, "Buy milk", task.Name)
	assert.Equal(t, 3, task.Priority)
}

func TestTaskIsValid(t *testing.T) {
	tests := []struct {
		name  string
		task  Task
		valid bool
	}{
		{"valid task", Task{Name: "Buy milk", Priority: 3}, true},
		{"lowest priority", Task{Name: "Buy milk", Priority: PriorityMin}, true},
		{"highest priority", Task{Name: "Buy milk", Priority: PriorityMax}, true},
		{"empty name", Task{Name: "", Priority: 3}, false},
		{"priority too low", Task{Name: "Buy milk", Priority: 0}, false},
		{"priority too high", Task{Name: "Buy milk", Priority: 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.task.IsValid())
		})
	}
}

func TestTaskString(t *testing.T) {
	task := Task{ID: 7, Name: "Write report", Priority: 9}
	assert.Equal(t, "7. Write report (priority 9)", task.String())
}
