// Package database provides the relational store client and migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	_ "modernc.org/sqlite"             // Register sqlite driver for database/sql

	"github.com/codeready-toolchain/agent-tracker/ent"
)

// Client wraps Ent client and provides access to the underlying database
type Client struct {
	*ent.Client
	db     *stdsql.DB
	driver string
}

// DB returns the underlying database connection for health checks and direct queries
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Driver returns the configured driver name (postgres or sqlite).
func (c *Client) Driver() string {
	return c.driver
}

// NewClientFromEnt wraps an existing Ent client (useful for testing)
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
		driver: DriverPostgres,
	}
}

// NewClient opens the configured store and brings its schema up to date.
// PostgreSQL applies the embedded SQL migrations; SQLite uses Ent auto-migration.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return newSQLiteClient(ctx, cfg)
	case DriverPostgres, "":
		return newPostgresClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newPostgresClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// pgx handles the connection, Ent only needs the dialect
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(db, cfg); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
		driver: DriverPostgres,
	}, nil
}

func openPostgres(ctx context.Context, cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func newSQLiteClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("sqlite", cfg.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	slog.Info("Using SQLite store", "path", cfg.SQLitePath)

	return &Client{
		Client: entClient,
		db:     db,
		driver: DriverSQLite,
	}, nil
}
