package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/memory"
	"todo-list/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		backend  string
		expected interface{}
	}{
		{BackendMemory, &memory.Repository{}},
		{BackendSQLite, &sqlite.SQLiteRepository{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Store.Backend = tt.backend

			repo, err := CreateRepository(cfg)
			require.NoError(t, err)
			defer repo.Close()
			assert.IsType(t, tt.expected, repo)

			ctx := context.Background()
			require.NoError(t, repo.Append(ctx, domain.NewTask("Test Task", 1)))
			tasks, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []domain.Task{{Name: "Test Task", DeadlineDays: 1}}, tasks)
		})
	}
}

func TestCreateRepository_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Backend = "redis"

	repo, err := CreateRepository(cfg)
	assert.Nil(t, repo)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
}
