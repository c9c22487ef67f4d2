// Agent tracker server: records agent invocations and serves the dashboard,
// bulk ingestion and metrics APIs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/agent-tracker/pkg/config"
	"github.com/codeready-toolchain/agent-tracker/pkg/database"
	"github.com/codeready-toolchain/agent-tracker/pkg/version"
)

var (
	configDir string

	rootCmd = &cobra.Command{
		Use:           "agent-tracker",
		Short:         "Track agent invocations, issues, improvements and changes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// loadEnvironment loads .env from the config directory, then the application
// config, and installs the configured logger as the slog default.
func loadEnvironment(ctx context.Context) (*config.Config, error) {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr))
	return cfg, nil
}

// openDatabase connects to the configured store and applies pending migrations.
func openDatabase(ctx context.Context) (*database.Client, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Connected to database", "driver", dbClient.Driver())
	return dbClient, nil
}
