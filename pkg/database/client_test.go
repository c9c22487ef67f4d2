package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/test/util"
)

// newTestClient creates a PostgreSQL client in an isolated schema.
// In CI (when CI_DATABASE_URL is set) it uses the external service container,
// locally a shared testcontainer.
func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func newSQLiteTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Config{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "tracker.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, DriverPostgres, health.Driver)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.True(t, client.Reachable(ctx))
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time can be 0 for very fast local pings
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	// Nanoseconds would put a local ping above 1,000,000
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.Less(t, waitDuration, float64(1000000))
}

func TestHealth_ClosedPoolIsUnhealthy(t *testing.T) {
	client := newSQLiteTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().Close())

	health, err := client.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, "unhealthy", health.Status)
	assert.False(t, client.Reachable(ctx))
}

func TestRunMigrations(t *testing.T) {
	db := util.SetupTestSchema(t)
	ctx := context.Background()
	cfg := Config{Database: "test"}

	require.NoError(t, runMigrations(db, cfg))
	// Second run is a no-op
	require.NoError(t, runMigrations(db, cfg))

	for _, table := range []string{"agents", "agent_invocations", "agent_issues", "agent_improvements", "agent_changes"} {
		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}

	// The migrated schema enforces the tier range
	_, err := db.ExecContext(ctx,
		`INSERT INTO agents (agent_number, name, category, tier, status, created_at, updated_at)
		 VALUES (1, 'Planner', 'coding', 9, 'active', now(), now())`)
	require.Error(t, err)
}

func TestHasEmbeddedMigrations(t *testing.T) {
	ok, err := hasEmbeddedMigrations()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMigrate_RejectsSQLite(t *testing.T) {
	_, err := Migrate(context.Background(), Config{Driver: DriverSQLite}, "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestSQLiteClient_DeleteRules(t *testing.T) {
	client := newSQLiteTestClient(t)
	ctx := context.Background()
	assert.Equal(t, DriverSQLite, client.Driver())

	agent, err := client.Agent.Create().
		SetAgentNumber(7).
		SetName("Code Reviewer").
		SetCategory(models.CategorySecurity).
		SetTier(2).
		Save(ctx)
	require.NoError(t, err)

	inv, err := client.AgentInvocation.Create().
		SetAgentID(agent.ID).
		SetTaskDescription("Review the payments PR").
		SetStartedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	issue, err := client.AgentIssue.Create().
		SetAgentID(agent.ID).
		SetAgentInvocationID(inv.ID).
		SetIssueDescription("Missed an unchecked error").
		SetSeverity(3).
		Save(ctx)
	require.NoError(t, err)

	change, err := client.AgentChange.Create().
		SetAgentID(agent.ID).
		SetAgentInvocationID(inv.ID).
		SetAgentIssueID(issue.ID).
		SetChangeType(models.ChangeTypeBugFix).
		SetChangeDescription("Tighten the error handling checklist").
		SetTriggeredBy(models.TriggeredByInvocationIssue).
		Save(ctx)
	require.NoError(t, err)

	t.Run("deleting an invocation nulls weak references", func(t *testing.T) {
		require.NoError(t, client.AgentInvocation.DeleteOneID(inv.ID).Exec(ctx))

		reloadedIssue, err := client.AgentIssue.Get(ctx, issue.ID)
		require.NoError(t, err)
		assert.Nil(t, reloadedIssue.AgentInvocationID)

		reloadedChange, err := client.AgentChange.Get(ctx, change.ID)
		require.NoError(t, err)
		assert.Nil(t, reloadedChange.AgentInvocationID)
		require.NotNil(t, reloadedChange.AgentIssueID)
		assert.Equal(t, issue.ID, *reloadedChange.AgentIssueID)
	})

	t.Run("deleting an agent removes everything it owns", func(t *testing.T) {
		require.NoError(t, client.Agent.DeleteOneID(agent.ID).Exec(ctx))

		issues, err := client.AgentIssue.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, issues)

		changes, err := client.AgentChange.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, changes)
	})
}

func TestConfig_SQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_pragma=foreign_keys(1)", Config{SQLitePath: ":memory:"}.SQLiteDSN())
	assert.Contains(t, Config{SQLitePath: "/tmp/x.db"}.SQLiteDSN(), "file:/tmp/x.db?_pragma=foreign_keys(1)")
	assert.Contains(t, Config{}.SQLiteDSN(), "agent-tracker.db")
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DriverPostgres, cfg.Driver)
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "agent_tracker", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Contains(t, cfg.DSN(), "sslmode=require")
			},
		},
		{
			name: "sqlite needs no password",
			envVars: map[string]string{
				"DB_DRIVER":      "sqlite",
				"DB_SQLITE_PATH": "/var/lib/tracker.db",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DriverSQLite, cfg.Driver)
				assert.Equal(t, "/var/lib/tracker.db", cfg.SQLitePath)
			},
		},
		{
			name: "unknown driver",
			envVars: map[string]string{
				"DB_DRIVER": "mysql",
			},
			wantErr:     true,
			errContains: "invalid DB_DRIVER",
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"DB_MAX_IDLE_CONNS": "abc123",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME", "DB_SQLITE_PATH",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				// t.Setenv restores the original value; Unsetenv then clears it for this test
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "missing password", mutate: func(c *Config) { c.Password = "" }, wantErr: true},
		{name: "idle conns exceed max conns", mutate: func(c *Config) { c.MaxOpenConns, c.MaxIdleConns = 5, 10 }, wantErr: true},
		{name: "zero max open conns", mutate: func(c *Config) { c.MaxOpenConns, c.MaxIdleConns = 0, 0 }, wantErr: true},
		{name: "negative idle conns", mutate: func(c *Config) { c.MaxIdleConns = -1 }, wantErr: true},
		{name: "sqlite skips pool checks", mutate: func(c *Config) { c.Driver, c.Password, c.MaxOpenConns = DriverSQLite, "", 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
