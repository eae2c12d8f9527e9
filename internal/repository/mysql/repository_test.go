package mysql

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
)

// setupTestDB connects to the MySQL server named by TD_TEST_MYSQL_DSN and
// starts from an empty tasks table. The tests are skipped when no server is
// configured.
func setupTestDB(t *testing.T) *MySQLRepository {
	dsn := os.Getenv("TD_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TD_TEST_MYSQL_DSN not set, skipping MySQL repository tests")
	}

	repo, err := New(dsn)
	require.NoError(t, err)

	_, err = repo.db.ExecContext(context.Background(), "DELETE FROM tasks")
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func TestCreateTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := &repository.Task{Name: "Buy milk", Priority: 3}
	err := repo.CreateTask(ctx, task)

	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", retrieved.Name)
	assert.Equal(t, 3, retrieved.Priority)
}

func TestGetTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTask(context.Background(), 99999)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestUpdateTaskPriority_SameValue(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := &repository.Task{Name: "Buy milk", Priority: 5}
	require.NoError(t, repo.CreateTask(ctx, task))

	// Writing the current value back must not be treated as a missing row
	err := repo.UpdateTaskPriority(ctx, task.ID, 5)
	require.NoError(t, err)
}

func TestUpdateTaskPriority_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.UpdateTaskPriority(context.Background(), 99999, 2)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteTask_SecondDeleteFails(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := &repository.Task{Name: "Temp", Priority: 1}
	require.NoError(t, repo.CreateTask(ctx, task))

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	err := repo.DeleteTask(ctx, task.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListTasks_OrderedByID(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		task := &repository.Task{Name: name, Priority: 5}
		require.NoError(t, repo.CreateTask(ctx, task))
		ids = append(ids, task.ID)
	}

	require.NoError(t, repo.DeleteTask(ctx, ids[1]))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Name)
	assert.Equal(t, "Third", tasks[1].Name)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
}
