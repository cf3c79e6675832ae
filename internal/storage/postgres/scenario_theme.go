package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

type ScenarioThemes struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScenarioThemes(pool *pgxpool.Pool, logger *slog.Logger) *ScenarioThemes {
	return &ScenarioThemes{pool: pool, logger: logger}
}

func (s *ScenarioThemes) Exists(ctx context.Context, id int64) (bool, error) {
	const op = "postgres.ScenarioTheme.Exists"

	const query = `SELECT EXISTS (SELECT 1 FROM scenario_themes WHERE id = $1)`

	var ok bool
	if err := s.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return ok, nil
}

func (s *ScenarioThemes) Create(ctx context.Context, theme *domain.ScenarioTheme) error {
	const op = "postgres.ScenarioTheme.Create"

	const query = `INSERT INTO scenario_themes (name) VALUES ($1) RETURNING id`

	if err := s.pool.QueryRow(ctx, query, theme.Name).Scan(&theme.ID); err != nil {
		s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
