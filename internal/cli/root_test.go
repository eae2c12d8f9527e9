package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
)

func newTestRoot(mockAPI *MockAPI) *RootCommand {
	return NewRootCommand(mockAPI, config.NewConfig())
}

func TestRootCommand_Add(t *testing.T) {
	mockAPI := &MockAPI{}
	mockAPI.On("AddTask", mock.Anything, "Buy milk", 3).
		Return(&domain.Task{ID: 1, Name: "Buy milk", Priority: 3}, nil)

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"add", "Buy milk", "3"})

	require.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestRootCommand_Add_WrongArgCount(t *testing.T) {
	mockAPI := &MockAPI{}

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"add", "Buy milk"})

	require.Error(t, err)
	mockAPI.AssertNotCalled(t, "AddTask")
}

func TestRootCommand_List(t *testing.T) {
	mockAPI := &MockAPI{}
	mockAPI.On("ListTasks", mock.Anything).Return([]*domain.Task{
		{ID: 1, Name: "Buy milk", Priority: 3},
	}, nil)

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"list"})

	require.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestRootCommand_Priority(t *testing.T) {
	mockAPI := &MockAPI{}
	mockAPI.On("UpdateTaskPriority", mock.Anything, int64(7), 9).Return(nil)

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"priority", "7", "9"})

	require.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestRootCommand_Delete(t *testing.T) {
	mockAPI := &MockAPI{}
	mockAPI.On("GetTask", mock.Anything, int64(7)).
		Return(&domain.Task{ID: 7, Name: "Temp", Priority: 1}, nil)
	mockAPI.On("DeleteTask", mock.Anything, int64(7)).Return(nil)

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"delete", "7"})

	require.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestRootCommand_FlagOverridesConfig(t *testing.T) {
	mockAPI := &MockAPI{}
	mockAPI.On("ListTasks", mock.Anything).Return([]*domain.Task{}, nil)

	cfg := config.NewConfig()
	root := NewRootCommand(mockAPI, cfg)
	err := root.ExecuteArgs([]string{"--task-name-max-length", "100", "list"})

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Validation.TaskNameMaxLength)
}

func TestRootCommand_FlagOverrideFailsValidation(t *testing.T) {
	mockAPI := &MockAPI{}

	root := newTestRoot(mockAPI)
	// mysql driver requires a DSN, so this override must be rejected
	err := root.ExecuteArgs([]string{"--db-driver", "mysql", "list"})

	require.Error(t, err)
	mockAPI.AssertNotCalled(t, "ListTasks")
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	mockAPI := &MockAPI{}

	root := newTestRoot(mockAPI)
	err := root.ExecuteArgs([]string{"frobnicate"})

	require.Error(t, err)
}
