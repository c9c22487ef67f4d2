package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus reports the schema version after migrating.
type MigrationStatus struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// runMigrations applies the embedded golang-migrate migrations.
//
// Migration files live in pkg/database/migrations and are embedded into the
// binary, so deployments need no files next to it. Edit ent/schema/*.go, add a
// matching numbered .up/.down pair, and the server applies it on startup.
func runMigrations(db *stdsql.DB, cfg Config) error {
	m, sourceDriver, err := newMigrator(db, cfg)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the shared
	// *sql.DB handed to postgres.WithInstance and break the Ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}
	return nil
}

// Migrate applies (up) or reverts (down) the embedded migrations against a
// PostgreSQL store without building an Ent client. Used by the migrate command.
func Migrate(ctx context.Context, cfg Config, direction string) (*MigrationStatus, error) {
	if cfg.Driver == DriverSQLite {
		return nil, fmt.Errorf("SQL migrations apply to %s only; sqlite schemas are managed automatically", DriverPostgres)
	}

	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	m, sourceDriver, err := newMigrator(db, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sourceDriver.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return nil, fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to read migration version: %w", err)
	}
	return &MigrationStatus{Version: version, Dirty: dirty}, nil
}

func newMigrator(db *stdsql.DB, cfg Config) (*migrate.Migrate, source.Driver, error) {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return nil, nil, fmt.Errorf("no embedded migration files found, binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		_ = sourceDriver.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, sourceDriver, nil
}

// hasEmbeddedMigrations checks if the embedded FS contains any .sql migration files
func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
