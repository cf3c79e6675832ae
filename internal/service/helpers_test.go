package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/service"
)

var (
	admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	user  = domain.Actor{UserID: 2, Role: domain.RoleUser}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strp(s string) *string { return &s }

func sevp(s domain.Severity) *domain.Severity { return &s }

func mustTime() time.Time {
	return time.Date(2025, 12, 23, 12, 0, 0, 0, time.UTC)
}

// trondheim is an active yellow event with a 1 km radius.
func trondheim(id int64) *domain.CrisisEvent {
	return &domain.CrisisEvent{
		ID:              id,
		Name:            "Flood",
		Description:     strp("River Nidelva is flooding"),
		Severity:        domain.SeverityYellow,
		EpicenterLat:    decimal.RequireFromString("63.4305000"),
		EpicenterLng:    decimal.RequireFromString("10.3951000"),
		Radius:          decimal.RequireFromString("1000.00"),
		StartTime:       mustTime(),
		UpdatedAt:       mustTime(),
		Active:          true,
		CreatedByUserID: 1,
	}
}

type mutateResult = func(context.Context, int64, service.MutateFunc) (*domain.CrisisEvent, *domain.CrisisEvent, []domain.CrisisEventChange, error)

// mutateOn behaves like the store: it runs fn on cur and returns the snapshots.
func mutateOn(cur *domain.CrisisEvent) mutateResult {
	return func(_ context.Context, _ int64, fn service.MutateFunc) (*domain.CrisisEvent, *domain.CrisisEvent, []domain.CrisisEventChange, error) {
		before := cur.Clone()
		working := cur.Clone()
		changes, err := fn(working)
		if err != nil {
			return nil, nil, nil, err
		}
		if len(changes) == 0 {
			return before, before, nil, nil
		}
		return before, working, changes, nil
	}
}
