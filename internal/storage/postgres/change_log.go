package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

// ChangeLog is the append-only audit trail of crisis events. Rows are never
// updated or deleted.
type ChangeLog struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewChangeLog(pool *pgxpool.Pool, logger *slog.Logger) *ChangeLog {
	return &ChangeLog{pool: pool, logger: logger}
}

func (c *ChangeLog) Append(ctx context.Context, change *domain.CrisisEventChange) error {
	const op = "postgres.ChangeLog.Append"

	if err := c.appendTo(ctx, c.pool, change); err != nil {
		c.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// appendTo inserts change through q so callers can join their transaction.
func (c *ChangeLog) appendTo(ctx context.Context, q querier, change *domain.CrisisEventChange) error {
	const query = `
		INSERT INTO crisis_event_changes (
			crisis_event_id, change_type, field, old_value, new_value,
			created_by_user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	return q.QueryRow(ctx, query,
		change.CrisisEventID,
		string(change.ChangeType),
		change.Field,
		change.OldValue,
		change.NewValue,
		change.CreatedByUserID,
		change.CreatedAt,
	).Scan(&change.ID)
}

func (c *ChangeLog) Query(ctx context.Context, eventID int64, page domain.PageRequest) (domain.Page[domain.CrisisEventChange], error) {
	const op = "postgres.ChangeLog.Query"

	page = page.Normalize()

	const countQuery = `SELECT COUNT(*) FROM crisis_event_changes WHERE crisis_event_id = $1`

	var total int64
	if err := c.pool.QueryRow(ctx, countQuery, eventID).Scan(&total); err != nil {
		c.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return domain.Page[domain.CrisisEventChange]{}, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, crisis_event_id, change_type, field, old_value, new_value,
			   created_by_user_id, created_at, updated_at
		FROM crisis_event_changes
		WHERE crisis_event_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := c.pool.Query(ctx, listQuery, eventID, page.Size, page.Offset())
	if err != nil {
		c.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return domain.Page[domain.CrisisEventChange]{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	items := make([]domain.CrisisEventChange, 0, page.Size)
	for rows.Next() {
		var ch domain.CrisisEventChange
		if err := rows.Scan(
			&ch.ID,
			&ch.CrisisEventID,
			&ch.ChangeType,
			&ch.Field,
			&ch.OldValue,
			&ch.NewValue,
			&ch.CreatedByUserID,
			&ch.CreatedAt,
			&ch.UpdatedAt,
		); err != nil {
			c.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return domain.Page[domain.CrisisEventChange]{}, e.WrapError(ctx, op, err)
		}
		ch.CreatedAt = ch.CreatedAt.UTC()
		ch.UpdatedAt = ch.UpdatedAt.UTC()
		items = append(items, ch)
	}
	if err := rows.Err(); err != nil {
		c.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return domain.Page[domain.CrisisEventChange]{}, e.WrapError(ctx, op, err)
	}

	return domain.NewPage(items, page, total), nil
}
