package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrationsListsEmbeddedFiles(t *testing.T) {
	pending, err := pendingMigrations(map[string]bool{})
	require.NoError(t, err)

	require.NotEmpty(t, pending, "the roster schema must ship at least one migration")
	assert.Equal(t, "001_initial_schema.sql", pending[0])
}

func TestPendingMigrationsSkipsApplied(t *testing.T) {
	all, err := pendingMigrations(map[string]bool{})
	require.NoError(t, err)

	applied := make(map[string]bool, len(all))
	for _, name := range all {
		applied[name] = true
	}

	pending, err := pendingMigrations(applied)
	require.NoError(t, err)
	assert.Empty(t, pending, "applied migrations must never run twice")
}

func TestPendingMigrationsSorted(t *testing.T) {
	pending, err := pendingMigrations(map[string]bool{})
	require.NoError(t, err)

	for i := 1; i < len(pending); i++ {
		assert.Less(t, pending[i-1], pending[i], "migrations must apply in filename order")
	}
}
