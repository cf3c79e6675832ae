package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/service"
	"crisisAlert/pkg/e"
)

type CrisisEventRepo struct {
	pool    *pgxpool.Pool
	changes *ChangeLog
	logger  *slog.Logger
}

func NewCrisisEventRepo(pool *pgxpool.Pool, changes *ChangeLog, logger *slog.Logger) *CrisisEventRepo {
	return &CrisisEventRepo{pool: pool, changes: changes, logger: logger}
}

// numeric columns are read as text to keep their exact scale
const eventColumns = `
	id, name, description, severity,
	epicenter_latitude::text, epicenter_longitude::text, radius::text,
	start_time, updated_at, active, created_by_user_id, scenario_theme_id`

func scanEvent(row pgx.Row) (*domain.CrisisEvent, error) {
	var (
		ev               domain.CrisisEvent
		lat, lng, radius string
	)
	if err := row.Scan(
		&ev.ID,
		&ev.Name,
		&ev.Description,
		&ev.Severity,
		&lat,
		&lng,
		&radius,
		&ev.StartTime,
		&ev.UpdatedAt,
		&ev.Active,
		&ev.CreatedByUserID,
		&ev.ScenarioThemeID,
	); err != nil {
		return nil, err
	}

	var err error
	if ev.EpicenterLat, err = decimal.NewFromString(lat); err != nil {
		return nil, err
	}
	if ev.EpicenterLng, err = decimal.NewFromString(lng); err != nil {
		return nil, err
	}
	if ev.Radius, err = decimal.NewFromString(radius); err != nil {
		return nil, err
	}
	ev.StartTime = ev.StartTime.UTC()
	ev.UpdatedAt = ev.UpdatedAt.UTC()
	return &ev, nil
}

func (p *CrisisEventRepo) Create(ctx context.Context, event *domain.CrisisEvent, creation *domain.CrisisEventChange) error {
	const op = "postgres.CrisisEvent.Create"

	const query = `
		INSERT INTO crisis_events (
			name, description, severity,
			epicenter_latitude, epicenter_longitude, radius,
			start_time, updated_at, active, created_by_user_id, scenario_theme_id
		)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query,
			event.Name,
			event.Description,
			string(event.Severity),
			event.EpicenterLat.String(),
			event.EpicenterLng.String(),
			event.Radius.String(),
			event.StartTime,
			event.UpdatedAt,
			event.Active,
			event.CreatedByUserID,
			event.ScenarioThemeID,
		).Scan(&event.ID); err != nil {
			return err
		}

		creation.CrisisEventID = event.ID
		return p.changes.appendTo(ctx, tx, creation)
	})
	if err != nil {
		p.logger.Error("db tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CrisisEventRepo) Get(ctx context.Context, id int64) (*domain.CrisisEvent, error) {
	const op = "postgres.CrisisEvent.Get"

	query := `SELECT ` + eventColumns + ` FROM crisis_events WHERE id = $1`

	ev, err := scanEvent(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if !isNoRows(err) {
			p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return ev, nil
}

func (p *CrisisEventRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const op = "postgres.CrisisEvent.Exists"

	const query = `SELECT EXISTS (SELECT 1 FROM crisis_events WHERE id = $1)`

	var ok bool
	if err := p.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return ok, nil
}

// Mutate serialises writers on the row with SELECT ... FOR UPDATE. Errors
// returned by fn roll the transaction back and are returned unchanged.
func (p *CrisisEventRepo) Mutate(ctx context.Context, id int64, fn service.MutateFunc) (before, after *domain.CrisisEvent, changes []domain.CrisisEventChange, err error) {
	const op = "postgres.CrisisEvent.Mutate"

	selectQuery := `SELECT ` + eventColumns + ` FROM crisis_events WHERE id = $1 FOR UPDATE`

	const updateQuery = `
		UPDATE crisis_events
		SET name                = $2,
			description         = $3,
			severity            = $4,
			epicenter_latitude  = $5::numeric,
			epicenter_longitude = $6::numeric,
			radius              = $7::numeric,
			updated_at          = $8,
			active              = $9,
			scenario_theme_id   = $10
		WHERE id = $1
	`

	var fnErr error
	txErr := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		cur, err := scanEvent(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			return err
		}
		before = cur.Clone()

		changes, fnErr = fn(cur)
		if fnErr != nil {
			return fnErr
		}
		after = cur
		if len(changes) == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, updateQuery,
			cur.ID,
			cur.Name,
			cur.Description,
			string(cur.Severity),
			cur.EpicenterLat.String(),
			cur.EpicenterLng.String(),
			cur.Radius.String(),
			cur.UpdatedAt,
			cur.Active,
			cur.ScenarioThemeID,
		); err != nil {
			return err
		}

		for i := range changes {
			changes[i].CrisisEventID = id
			if err := p.changes.appendTo(ctx, tx, &changes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if fnErr != nil {
		return nil, nil, nil, fnErr
	}
	if txErr != nil {
		if !isNoRows(txErr) {
			p.logger.Error("db tx failed", slog.String("op", op), slog.Any("error", txErr), slog.Int64("id", id))
		}
		return nil, nil, nil, e.WrapError(ctx, op, txErr)
	}

	return before, after, changes, nil
}

func (p *CrisisEventRepo) ListByActive(ctx context.Context, active bool) ([]*domain.CrisisEvent, error) {
	const op = "postgres.CrisisEvent.ListByActive"

	query := `SELECT ` + eventColumns + `
		FROM crisis_events
		WHERE active = $1
		ORDER BY start_time DESC, id DESC`

	rows, err := p.pool.Query(ctx, query, active)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.collect(ctx, op, rows)
}

func (p *CrisisEventRepo) ListActivePage(ctx context.Context, page domain.PageRequest) ([]*domain.CrisisEvent, int64, error) {
	const op = "postgres.CrisisEvent.ListActivePage"

	page = page.Normalize()

	const countQuery = `SELECT COUNT(*) FROM crisis_events WHERE active = TRUE`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	dir := "DESC"
	if page.SortDir == domain.SortAsc {
		dir = "ASC"
	}
	listQuery := fmt.Sprintf(`SELECT %s
		FROM crisis_events
		WHERE active = TRUE
		ORDER BY start_time %s, id DESC
		LIMIT $1 OFFSET $2`, eventColumns, dir)

	rows, err := p.pool.Query(ctx, listQuery, page.Size, page.Offset())
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	events, err := p.collect(ctx, op, rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (p *CrisisEventRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]*domain.CrisisEvent, error) {
	events := make([]*domain.CrisisEvent, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return events, nil
}
