package cli

import (
	"todo-tracker/internal/api"
	"todo-tracker/internal/config"
)

// App bundles the dependencies shared by all command handlers
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
	}
}

// NewAppWithConfig creates a new CLI application instance with the given configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}
