package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// PriorityCommand handles the priority command
type PriorityCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the priority command
func (c *PriorityCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "priority", "usage: td priority <id> <new-priority>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("id", args[0], "must be an integer")
	}

	priority, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewInvalidInputError("priority", args[1], "must be an integer")
	}

	if err := c.api.UpdateTaskPriority(ctx, id, priority); err != nil {
		return c.errorHandler.Handle("update priority", err)
	}

	fmt.Printf("Updated task %d to priority %d\n", id, priority)
	return nil
}
