package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

func TestBuiltin(t *testing.T) {
	entries, err := Builtin()
	require.NoError(t, err)
	require.Len(t, entries, 100)

	assert.Equal(t, 1, entries[0].Number)
	assert.Equal(t, "Market Research Specialist", entries[0].Name)
	assert.Equal(t, models.CategoryResearch, entries[0].Category)
	assert.Equal(t, 100, entries[len(entries)-1].Number)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "agents: [", "failed to parse"},
		{"zero number", "agents:\n  - {number: 0, name: a, category: coding, tier: 1}", "number must be positive"},
		{"duplicate", "agents:\n  - {number: 1, name: a, category: coding, tier: 1}\n  - {number: 1, name: b, category: coding, tier: 1}", "duplicate number 1"},
		{"no name", "agents:\n  - {number: 1, category: coding, tier: 1}", "name is required"},
		{"bad category", "agents:\n  - {number: 1, name: a, category: cooking, tier: 1}", `unknown category "cooking"`},
		{"bad tier", "agents:\n  - {number: 1, name: a, category: coding, tier: 8}", "tier 8 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSeed_Idempotent(t *testing.T) {
	client := testdb.NewSQLiteTestClient(t)
	ctx := context.Background()

	entries, err := Builtin()
	require.NoError(t, err)

	// A pre-existing agent keeps its local edits
	_, err = client.Agent.Create().SetAgentNumber(1).SetName("Renamed").
		SetCategory(models.CategoryResearch).SetTier(5).Save(ctx)
	require.NoError(t, err)

	res, err := Seed(ctx, client.Client, entries)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Created: 99, Skipped: 1}, res)

	res, err = Seed(ctx, client.Client, entries)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Created: 0, Skipped: 100}, res)

	count, err := client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)

	first, err := client.Agent.Query().Where(agent.AgentNumberEQ(1)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", first.Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents:\n  - {number: 7, name: Custom, category: design, tier: 3}\n"), 0o600))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.CategoryDesign, entries[0].Category)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read agent catalog")
}
