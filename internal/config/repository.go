package config

import (
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/repository/memory"
	"todo-list/internal/repository/sqlite"
)

// CreateRepository creates the task sequence backend selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Store.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite:
		repo, err := sqlite.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, errors.NewConfigurationError("store.backend", fmt.Errorf("unknown backend %q", config.Store.Backend))
	}
}
