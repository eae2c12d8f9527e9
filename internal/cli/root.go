package cli

import (
	"context"

	"github.com/spf13/cobra"

	"todo-tracker/internal/api"
	"todo-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line todo list with priorities",
		Long: `Todo Tracker (td) is a command-line application for managing a personal
task list. Every task has a name and an integer priority between 1 (lowest)
and 10 (highest), persisted across sessions.

EXAMPLES:
  td                                       # Open the interactive menu
  td add "Buy milk" 3                      # Add a task with priority 3
  td list                                  # Show all tasks ordered by id
  td priority 7 9                          # Set priority of task 7 to 9
  td delete 7                              # Delete task 7
  td export format=csv > tasks.csv         # Export the task list

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Database Configuration:
    TD_DB_DRIVER                           Storage driver, sqlite or mysql (default: sqlite)
    TD_DB_DIR                              Database directory (default: ~/.td)
    TD_DB_FILENAME                         Database filename (default: td.db)
    TD_DB_DSN                              MySQL DSN, used when driver is mysql
    TD_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TD_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Validation Configuration:
    TD_VALIDATION_TASK_NAME_MIN            Min task name length (default: 1)
    TD_VALIDATION_TASK_NAME_MAX            Max task name length (default: 255)

  Application Configuration:
    TD_APP_TIMEOUT                         Application timeout (default: 60s)
    TD_APP_VERBOSE                         Enable verbose output (default: false)
    TD_EXPORT_DEFAULT_FORMAT               Default export format (default: csv)

GETTING HELP:
  td [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
		// Running td with no subcommand opens the interactive shell
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runShell()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments (used in tests)
func (r *RootCommand) ExecuteArgs(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-driver", "", "Storage driver, sqlite or mysql (overrides TD_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")
	flags.String("db-dsn", "", "MySQL DSN (overrides TD_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TD_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TD_DB_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TD_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TD_VALIDATION_TASK_NAME_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TD_APP_VERBOSE)")
}

// getConfigFromFlags applies changed persistent flags onto the configuration
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("db-driver") {
		r.config.Database.Driver, _ = flags.GetString("db-driver")
	}
	if flags.Changed("db-dir") {
		r.config.Database.Dir, _ = flags.GetString("db-dir")
	}
	if flags.Changed("db-filename") {
		r.config.Database.Filename, _ = flags.GetString("db-filename")
	}
	if flags.Changed("db-dsn") {
		r.config.Database.DSN, _ = flags.GetString("db-dsn")
	}
	if flags.Changed("db-query-timeout") {
		r.config.Database.QueryTimeout, _ = flags.GetDuration("db-query-timeout")
	}
	if flags.Changed("db-write-timeout") {
		r.config.Database.WriteTimeout, _ = flags.GetDuration("db-write-timeout")
	}
	if flags.Changed("task-name-min-length") {
		r.config.Validation.TaskNameMinLength, _ = flags.GetInt("task-name-min-length")
	}
	if flags.Changed("task-name-max-length") {
		r.config.Validation.TaskNameMaxLength, _ = flags.GetInt("task-name-max-length")
	}
	if flags.Changed("app-timeout") {
		r.config.Application.Timeout, _ = flags.GetDuration("app-timeout")
	}
	if flags.Changed("verbose") {
		r.config.Application.Verbose, _ = flags.GetBool("verbose")
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add \"task name\" <priority>",
		Short: "Add a new task",
		Long:  "Add a new task with the given name and an integer priority between 1 and 10.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Application.Timeout)
			defer cancel()

			addHandler := NewAddCommand(NewAppWithConfig(r.api, r.config))
			return addHandler.Execute(ctx, args)
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks ordered by id ascending.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Application.Timeout)
			defer cancel()

			listHandler := NewListCommand(NewAppWithConfig(r.api, r.config))
			return listHandler.Execute(ctx, args)
		},
	}

	// Priority command
	priorityCmd := &cobra.Command{
		Use:   "priority <id> <new-priority>",
		Short: "Change the priority of a task",
		Long:  "Overwrite the priority of an existing task. The name and id stay unchanged.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Application.Timeout)
			defer cancel()

			priorityHandler := NewPriorityCommand(NewAppWithConfig(r.api, r.config))
			return priorityHandler.Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Permanently remove the task with the given id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Application.Timeout)
			defer cancel()

			deleteHandler := NewDeleteCommand(NewAppWithConfig(r.api, r.config))
			return deleteHandler.Execute(ctx, args)
		},
	}

	// Export command
	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export [format=csv|json|pdf]",
		Short: "Export the task list",
		Long: `Export the task list in the specified format.

Supported formats:
  csv  - Comma-separated values
  json - Indented JSON
  pdf  - One task per line, rendered as a PDF document

Examples:
  td export format=csv
  td export format=pdf --out tasks.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Application.Timeout)
			defer cancel()

			exportHandler := NewExportCommand(NewAppWithConfig(r.api, r.config), exportOut)
			return exportHandler.Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the export to a file instead of stdout")

	// Shell command
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive menu",
		Long:  "Open the interactive menu for adding, listing, reprioritizing, and deleting tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runShell()
		},
	}

	r.cmd.AddCommand(addCmd, listCmd, priorityCmd, deleteCmd, exportCmd, shellCmd)
}

// runShell starts the interactive menu loop on the controlling terminal.
// The shell is open-ended, so it runs without the application timeout.
func (r *RootCommand) runShell() error {
	reader, err := NewReadlineReader()
	if err != nil {
		return err
	}
	defer reader.Close()

	shellHandler := NewShellCommand(NewAppWithConfig(r.api, r.config), reader)
	return shellHandler.Execute(context.Background())
}
