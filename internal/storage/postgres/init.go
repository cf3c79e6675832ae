package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"crisisAlert/internal/config"
	"crisisAlert/pkg/e"
)

type Postgres struct {
	Pool          *pgxpool.Pool
	Events        *CrisisEventRepo
	Changes       *ChangeLog
	Residents     *Residents
	Themes        *ScenarioThemes
	Notifications *NotificationLog
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("database", cfg.Postgres.Database),
	)

	if cfg.Postgres.AutoMigrate {
		if err := MigrateUp(cfg.Postgres.URL(), logger); err != nil {
			logger.Error("Failed to apply migrations", slog.Any("error", err))
			return nil, err
		}
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN())
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolCfg.MinConns = cfg.Postgres.MinConns
	}
	if cfg.Postgres.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	return newRepositories(pool, logger), nil
}

func newRepositories(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	changes := NewChangeLog(pool, logger)
	return &Postgres{
		Pool:          pool,
		Events:        NewCrisisEventRepo(pool, changes, logger),
		Changes:       changes,
		Residents:     NewResidents(pool, logger),
		Themes:        NewScenarioThemes(pool, logger),
		Notifications: NewNotificationLog(pool, logger),
	}
}

func (p *Postgres) Close() {
	p.Pool.Close()
}
