package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

// NotificationLog records dispatched notifications. The unique dedupe_key
// keeps one row per resident and event mutation.
type NotificationLog struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationLog(pool *pgxpool.Pool, logger *slog.Logger) *NotificationLog {
	return &NotificationLog{pool: pool, logger: logger}
}

func (p *NotificationLog) MarkSent(ctx context.Context, n domain.NotificationPayload) (bool, error) {
	const op = "postgres.NotificationLog.MarkSent"

	const query = `
		INSERT INTO crisis_notifications (id, dedupe_key, user_id, crisis_event_id, kind, reason, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (dedupe_key) DO NOTHING
	`

	cmd, err := p.pool.Exec(ctx, query,
		n.ID,
		n.DedupeKey,
		n.UserID,
		n.EventID,
		string(n.Kind),
		string(n.Reason),
		n.Message,
		n.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (p *NotificationLog) Release(ctx context.Context, dedupeKey string) error {
	const op = "postgres.NotificationLog.Release"

	if _, err := p.pool.Exec(ctx, `DELETE FROM crisis_notifications WHERE dedupe_key = $1`, dedupeKey); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *NotificationLog) CountUniqueUsers(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.NotificationLog.CountUniqueUsers"

	return p.count(ctx, op, `
		SELECT COUNT(DISTINCT user_id)
		FROM crisis_notifications
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`, minutes)
}

func (p *NotificationLog) CountTotal(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.NotificationLog.CountTotal"

	return p.count(ctx, op, `
		SELECT COUNT(*)
		FROM crisis_notifications
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`, minutes)
}

func (p *NotificationLog) count(ctx context.Context, op, query string, minutes int) (int64, error) {
	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
