package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "add", "usage: td add \"task name\" <priority>")
	}

	name := args[0]
	priority, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewInvalidInputError("priority", args[1], "must be an integer")
	}

	task, err := c.api.AddTask(ctx, name, priority)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (priority %d)\n", task.ID, task.Name, task.Priority)
	return nil
}
