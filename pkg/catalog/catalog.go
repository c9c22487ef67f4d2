// Package catalog holds the built-in agent catalog and seeds it into the store.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

//go:embed agents.yaml
var agentsYAML []byte

// Entry is one agent in the built-in catalog.
type Entry struct {
	Number   int             `yaml:"number"`
	Name     string          `yaml:"name"`
	Category models.Category `yaml:"category"`
	Tier     int             `yaml:"tier"`
}

type catalogFile struct {
	Agents []Entry `yaml:"agents"`
}

var (
	builtin     []Entry
	builtinErr  error
	builtinOnce sync.Once
)

// Builtin returns the embedded catalog, parsed and validated once.
func Builtin() ([]Entry, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(agentsYAML)
	})
	return builtin, builtinErr
}

// Load reads and parses a catalog file in the same format as the built-in one.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document and checks every entry.
func Parse(data []byte) ([]Entry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse agent catalog: %w", err)
	}

	seen := make(map[int]bool, len(f.Agents))
	for i, e := range f.Agents {
		switch {
		case e.Number <= 0:
			return nil, fmt.Errorf("catalog entry %d: number must be positive", i)
		case seen[e.Number]:
			return nil, fmt.Errorf("catalog entry %d: duplicate number %d", i, e.Number)
		case e.Name == "":
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		case !e.Category.IsValid():
			return nil, fmt.Errorf("catalog entry %d: unknown category %q", i, e.Category)
		case e.Tier < models.MinLevel || e.Tier > models.MaxLevel:
			return nil, fmt.Errorf("catalog entry %d: tier %d out of range", i, e.Tier)
		}
		seen[e.Number] = true
	}
	return f.Agents, nil
}

// SeedResult reports what a seeding run did.
type SeedResult struct {
	Created int
	Skipped int
}

// Seed inserts every catalog entry whose agent number is not yet stored.
// Existing agents are left untouched, so running it again is a no-op.
func Seed(ctx context.Context, client *ent.Client, entries []Entry) (*SeedResult, error) {
	existing, err := client.Agent.Query().Select(agent.FieldAgentNumber).Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing agents: %w", err)
	}
	stored := make(map[int]bool, len(existing))
	for _, n := range existing {
		stored[n] = true
	}

	result := &SeedResult{}
	builders := make([]*ent.AgentCreate, 0, len(entries))
	for _, e := range entries {
		if stored[e.Number] {
			result.Skipped++
			continue
		}
		builders = append(builders, client.Agent.Create().
			SetAgentNumber(e.Number).
			SetName(e.Name).
			SetCategory(e.Category).
			SetTier(e.Tier))
	}

	if len(builders) > 0 {
		if _, err := client.Agent.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert catalog agents: %w", err)
		}
	}
	result.Created = len(builders)

	slog.Info("Agent catalog seeded", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}
