package db

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationSource returns the embedded SQL migrations.
func MigrationSource() (source.Driver, error) {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}
	return d, nil
}

// NewMigrator builds a golang-migrate instance over the open Postgres connection.
// Closing the returned instance also closes the connection.
func (d *Database) NewMigrator() (*migrate.Migrate, error) {
	if d.cfg.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("sql migrations require the %s driver, got %s", config.DriverPostgres, d.cfg.Driver)
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	src, err := MigrationSource()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

// Migrate brings the schema up to date. Postgres runs the versioned SQL
// migrations; SQLite, used for local runs, is auto-migrated from the models.
func (d *Database) Migrate() error {
	if d.cfg.Driver == config.DriverSQLite {
		return d.AutoMigrate(&model.BudgetModel{}, &model.TransactionModel{})
	}

	m, err := d.NewMigrator()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("Database migrations applied", "version", version, "dirty", dirty)
	return nil
}
