package config

import (
	"fmt"
	"os"

	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/mysql"
	"todo-tracker/internal/repository/sqlite"
)

// CreateRepository creates a repository instance for the configured driver
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Database.Driver {
	case DriverMySQL:
		repo, err := mysql.New(config.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mysql database: %w", err)
		}
		return repo, nil
	default:
		// Make sure the database directory exists before sqlite opens the file
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		repo, err := sqlite.New(config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
