package main

import (
	"fmt"
	"os"

	"todo-tracker/internal/api"
	"todo-tracker/internal/cli"
	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/validation"
)

func main() {
	os.Exit(run())
}

// run wires the application together. It exists so the repository handle is
// released on every exit path before the process exit code is set.
func run() int {
	// Load configuration: defaults, .env file, environment variables
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	// Create repository for the configured driver
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		return 1
	}
	defer repo.Close()

	logging.Debugf("using %s driver\n", cfg.Database.Driver)

	// Create API instance with config-aware validation
	validator := validation.NewValidatorWithConfig(cfg)
	apiInstance := api.NewWithValidator(repo, validation.NewTaskValidatorWithValidator(validator))

	// Create root command with injected API
	root := cli.NewRootCommand(apiInstance, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
