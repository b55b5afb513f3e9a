package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"emprius-backend/internal/logger"
)

// Migrate applies every pending migration found at sourceURL (e.g. file://migrations).
func Migrate(sourceURL, dsn string) error {
	return withMigrator(sourceURL, dsn, func(m *migrate.Migrate) error {
		return ignoreNoChange(m.Up())
	})
}

// MigrateDown reverts the last applied migration.
func MigrateDown(sourceURL, dsn string) error {
	return withMigrator(sourceURL, dsn, func(m *migrate.Migrate) error {
		return ignoreNoChange(m.Steps(-1))
	})
}

// MigrationVersion reports the current schema version. A database that was
// never migrated returns version 0.
func MigrationVersion(sourceURL, dsn string) (version uint, dirty bool, err error) {
	err = withMigrator(sourceURL, dsn, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		return verr
	})
	return version, dirty, err
}

func withMigrator(sourceURL, dsn string, fn func(m *migrate.Migrate) error) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	logger.Info("Running migrations", "source", sourceURL)
	return fn(m)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
