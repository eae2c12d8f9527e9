package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/repository"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()

	domainTask := Task{ID: 7, Name: "Write report", Priority: 9}
	dbTask := mapper.ToStorage(domainTask)

	assert.Equal(t, domainTask.ID, dbTask.ID)
	assert.Equal(t, domainTask.Name, dbTask.Name)
	assert.Equal(t, domainTask.Priority, dbTask.Priority)

	back := mapper.FromStorage(dbTask)
	assert.Equal(t, domainTask, back)
}

func TestTaskMapper_FromStorageSlice(t *testing.T) {
	mapper := NewTaskMapper()

	dbTasks := []*repository.Task{
		{ID: 1, Name: "A", Priority: 1},
		{ID: 2, Name: "B", Priority: 2},
	}

	domainTasks := mapper.FromStorageSlice(dbTasks)
	require.Len(t, domainTasks, 2)
	assert.Equal(t, int64(1), domainTasks[0].ID)
	assert.Equal(t, "B", domainTasks[1].Name)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()
	require.NotNil(t, mapper.Task)
}
