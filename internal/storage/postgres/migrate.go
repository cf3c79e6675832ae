package postgres

import (
	"embed"
	"errors"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crisisAlert/pkg/e"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator opens the embedded migrations against databaseURL, which must
// use the pgx5:// scheme.
func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	const op = "postgres.NewMigrator"

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return m, nil
}

func MigrateUp(databaseURL string, logger *slog.Logger) error {
	const op = "postgres.MigrateUp"

	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return e.Wrap(op, err)
	}
	version, dirty, _ := m.Version()
	logger.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}

// MigrateDown rolls back steps migrations, or all of them when steps <= 0.
func MigrateDown(databaseURL string, steps int, logger *slog.Logger) error {
	const op = "postgres.MigrateDown"

	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return e.Wrap(op, err)
	}
	return nil
}

func closeMigrator(m *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Warn("close migrator failed", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
	}
}
