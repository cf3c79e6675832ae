package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (p *Postgres) CrisisEvents() *CrisisEventRepo    { return p.Events }
func (p *Postgres) ChangeLog() *ChangeLog             { return p.Changes }
func (p *Postgres) ResidentDirectory() *Residents     { return p.Residents }
func (p *Postgres) ScenarioThemes() *ScenarioThemes   { return p.Themes }
func (p *Postgres) NotificationLog() *NotificationLog { return p.Notifications }
