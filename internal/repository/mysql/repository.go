package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLRepository implements the repository.Repository interface against a
// MySQL server. It exists for setups where the task list lives on a shared
// database host instead of a local file.
type MySQLRepository struct {
	db *sql.DB
}

// New creates a new MySQL repository instance from a DSN
func New(dsn string) (*MySQLRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	r := &MySQLRepository{db: db}
	if err := r.migrate(context.Background()); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return r, nil
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	return r.db.Close()
}

// migrate creates the tasks table if it does not exist. MySQL DDL is not
// transactional, so this uses a single idempotent statement instead of the
// versioned migrations the sqlite driver runs.
func (r *MySQLRepository) migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS tasks (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    priority INT NOT NULL,
    INDEX idx_tasks_name (name)
)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// CreateTask creates a new task and assigns its ID
func (r *MySQLRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (name, priority) VALUES (?, ?)`

	id, err := repository.ExecuteWithLastInsertID(ctx, r.db, query, task.Name, task.Priority)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *MySQLRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	query := `SELECT id, name, priority FROM tasks WHERE id = ?`
	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// FindTaskByName retrieves the first task whose name contains the given
// text, matching case-insensitively. The lowest ID wins.
func (r *MySQLRepository) FindTaskByName(ctx context.Context, name string) (*repository.Task, error) {
	query := `
	SELECT id, name, priority
	FROM tasks
	WHERE name LIKE ?
	ORDER BY id ASC
	LIMIT 1`

	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", name, "%"+name+"%")
}

// ListTasks retrieves all tasks ordered by ID ascending
func (r *MySQLRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	query := `SELECT id, name, priority FROM tasks ORDER BY id ASC`
	return repository.QueryMultiple(ctx, r.db, query, repository.ScanTasks, "tasks")
}

// UpdateTaskPriority overwrites the priority of an existing task.
// MySQL reports changed rows rather than matched rows for UPDATE, so a
// write of the current value would look like a missing row; existence is
// checked explicitly instead.
func (r *MySQLRepository) UpdateTaskPriority(ctx context.Context, id int64, priority int) error {
	if _, err := r.GetTask(ctx, id); err != nil {
		return err
	}

	query := `UPDATE tasks SET priority = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, priority, id); err != nil {
		return repository.HandleDatabaseError("execute query", err)
	}
	return nil
}

// DeleteTask deletes a task by ID
func (r *MySQLRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
