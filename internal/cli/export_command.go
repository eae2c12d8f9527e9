package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	format       string
	outPath      string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, outPath string) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		format:       app.config.Commands.ExportDefaultFormat,
		outPath:      outPath,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := c.format
	if len(args) > 0 {
		arg := args[0]
		if !strings.HasPrefix(arg, "format=") {
			return errors.NewInvalidInputError("format", arg, "usage: td export format=csv|json|pdf")
		}
		format = strings.TrimPrefix(arg, "format=")
	}

	exporter := export.NewExporter(c.api)
	data, err := exporter.Export(ctx, format)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if c.outPath != "" {
		if err := os.WriteFile(c.outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported tasks to %s\n", c.outPath)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
