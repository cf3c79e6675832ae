package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/geo"
)

// Residents reads users with the home and household coordinates used for
// impact checks. User and household records are owned elsewhere.
type Residents struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResidents(pool *pgxpool.Pool, logger *slog.Logger) *Residents {
	return &Residents{pool: pool, logger: logger}
}

const residentSelect = `
	SELECT u.id, u.name,
		   u.home_latitude::float8, u.home_longitude::float8,
		   h.id, h.latitude::float8, h.longitude::float8
	FROM users u
	LEFT JOIN households h ON h.id = u.household_id`

func scanResident(row pgx.Row) (domain.Resident, error) {
	var (
		r                  domain.Resident
		homeLat, homeLng   *float64
		householdID        *int64
		houseLat, houseLng *float64
	)
	if err := row.Scan(&r.UserID, &r.Name, &homeLat, &homeLng, &householdID, &houseLat, &houseLng); err != nil {
		return domain.Resident{}, err
	}
	r.Home = point(homeLat, homeLng)
	if householdID != nil {
		r.Household = &domain.Household{ID: *householdID, Location: point(houseLat, houseLng)}
	}
	return r, nil
}

func point(lat, lng *float64) *geo.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lng: *lng}
}

// ListLocated returns every user with at least one known location.
func (p *Residents) ListLocated(ctx context.Context) ([]domain.Resident, error) {
	const op = "postgres.Residents.ListLocated"

	query := residentSelect + `
	WHERE (u.home_latitude IS NOT NULL AND u.home_longitude IS NOT NULL)
	   OR (h.latitude IS NOT NULL AND h.longitude IS NOT NULL)
	ORDER BY u.id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	residents := make([]domain.Resident, 0, 64)
	for rows.Next() {
		r, err := scanResident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		residents = append(residents, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return residents, nil
}

func (p *Residents) Get(ctx context.Context, userID int64) (*domain.Resident, error) {
	const op = "postgres.Residents.Get"

	r, err := scanResident(p.pool.QueryRow(ctx, residentSelect+` WHERE u.id = $1`, userID))
	if err != nil {
		if !isNoRows(err) {
			p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return &r, nil
}
