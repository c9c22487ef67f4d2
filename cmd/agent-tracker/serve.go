package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/codeready-toolchain/agent-tracker/pkg/api"
	"github.com/codeready-toolchain/agent-tracker/pkg/catalog"
	"github.com/codeready-toolchain/agent-tracker/pkg/mcp"
	"github.com/codeready-toolchain/agent-tracker/pkg/telemetry"
	"github.com/codeready-toolchain/agent-tracker/pkg/version"
)

var seedOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "Seed the built-in agent catalog before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Configuration and logging
	cfg, err := loadEnvironment(ctx)
	if err != nil {
		return err
	}
	slog.Info("Starting agent tracker",
		"version", version.Version,
		"environment", cfg.App.Environment,
		"port", cfg.Server.Port,
		"config_dir", configDir)

	// 2. Tracing
	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.App.Environment, version.Version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown error", "error", err)
		}
	}()

	// 3. Database
	dbClient, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	if seedOnStart {
		entries, err := catalog.Builtin()
		if err != nil {
			return err
		}
		if _, err := catalog.Seed(ctx, dbClient.Client, entries); err != nil {
			return err
		}
	}

	if cfg.Auth.APIToken == "" {
		slog.Warn("API_TOKEN not set; bulk ingestion and MCP endpoints will return 500")
	}

	// 4. HTTP server with MCP transport
	svc := api.NewServices(cfg, dbClient)
	server := api.NewServer(cfg, dbClient, svc)
	server.SetMCPHandler(mcp.New(svc.Agents, svc.Invocations).HTTPHandler())

	addr := net.JoinHostPort("", cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	// 5. Serve until a signal arrives or the server fails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("HTTP server listening", "addr", ln.Addr().String())
		return server.Serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down HTTP server", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("Shutdown complete")
	return nil
}
