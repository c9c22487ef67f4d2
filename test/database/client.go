// Package database provides store clients for tests.
package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/database"
	"github.com/codeready-toolchain/agent-tracker/test/util"
)

// NewTestClient creates a PostgreSQL-backed client in an isolated schema.
// In CI (when CI_DATABASE_URL is set) it connects to the external service
// container; locally it shares one testcontainer per package.
// Schema drop and connection close are registered with t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}

// NewSQLiteTestClient creates a file-backed SQLite client under t.TempDir().
// It needs no container and suits tests that only exercise portable queries.
func NewSQLiteTestClient(t *testing.T) *database.Client {
	t.Helper()
	client, err := database.NewClient(context.Background(), database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "agent-tracker.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
