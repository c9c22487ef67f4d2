package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/agent-tracker/pkg/catalog"
	"github.com/codeready-toolchain/agent-tracker/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the embedded PostgreSQL migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}
		if _, err := loadEnvironment(cmd.Context()); err != nil {
			return err
		}
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		status, err := database.Migrate(cmd.Context(), dbConfig, direction)
		if err != nil {
			return err
		}
		slog.Info("Migrations applied", "direction", direction, "version", status.Version, "dirty", status.Dirty)
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the agent catalog, skipping agent numbers that already exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if _, err := loadEnvironment(ctx); err != nil {
			return err
		}

		entries, err := loadCatalog(seedFile)
		if err != nil {
			return err
		}

		dbClient, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = dbClient.Close() }()

		result, err := catalog.Seed(ctx, dbClient.Client, entries)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d\n", result.Created, result.Skipped)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML catalog to load instead of the built-in one")
}

func loadCatalog(path string) ([]catalog.Entry, error) {
	if path == "" {
		return catalog.Builtin()
	}
	return catalog.Load(path)
}
