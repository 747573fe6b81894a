package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// Migrate applies pending PostgreSQL migrations (schema and reference data)
func (db *DB) Migrate(migrationsPath string) error {
	return RunMigrations(db.conn.DB, migrationsPath)
}

// RunMigrations applies pending migrations found under migrationsPath
func RunMigrations(db *sql.DB, migrationsPath string) error {
	source := migrationSource(migrationsPath)
	logger.Info("running database migrations", zap.String("source", source))

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		source,
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		logger.Warn("database is in dirty state, attempting to force version",
			zap.Uint("version", currentVersion),
		)
		if err := m.Force(int(currentVersion)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	logger.Info("current migration version",
		zap.Uint("version", currentVersion),
		zap.Bool("dirty", dirty),
	)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	logger.Info("migrations completed successfully",
		zap.Uint("old_version", currentVersion),
		zap.Uint("new_version", newVersion),
	)

	return nil
}

// migrationSource accepts a bare directory or an explicit file:// URL
func migrationSource(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return "file://" + path
}
