package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and assigns its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (name, priority) VALUES (?, ?)`

	id, err := repository.ExecuteWithLastInsertID(ctx, r.db, query, task.Name, task.Priority)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	query := `SELECT id, name, priority FROM tasks WHERE id = ?`
	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// FindTaskByName retrieves the first task whose name contains the given
// text, matching case-insensitively. The lowest ID wins.
func (r *SQLiteRepository) FindTaskByName(ctx context.Context, name string) (*repository.Task, error) {
	query := `
	SELECT id, name, priority
	FROM tasks
	WHERE name LIKE ?
	ORDER BY id ASC
	LIMIT 1`

	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", name, "%"+name+"%")
}

// ListTasks retrieves all tasks ordered by ID ascending
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	query := `SELECT id, name, priority FROM tasks ORDER BY id ASC`
	return repository.QueryMultiple(ctx, r.db, query, repository.ScanTasks, "tasks")
}

// UpdateTaskPriority overwrites the priority of an existing task
func (r *SQLiteRepository) UpdateTaskPriority(ctx context.Context, id int64, priority int) error {
	query := `UPDATE tasks SET priority = ? WHERE id = ?`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), priority, id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
