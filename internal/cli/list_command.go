package cli

import (
	"context"
	"fmt"

	"todo-tracker/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("%-6s %-8s %s\n", "ID", "PRI", "NAME")
	for _, task := range tasks {
		fmt.Printf("%-6d %-8d %s\n", task.ID, task.Priority, task.Name)
	}

	return nil
}
