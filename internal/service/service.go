package service

import (
	"context"
	"time"

	"crisisAlert/internal/domain"
)

// MutateFunc edits current in place and returns the audit records describing
// the edit. Returning no records leaves the row untouched.
type MutateFunc func(current *domain.CrisisEvent) ([]domain.CrisisEventChange, error)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type CrisisEventRepository interface {
	// Create inserts event and its creation record in one transaction.
	Create(ctx context.Context, event *domain.CrisisEvent, creation *domain.CrisisEventChange) error
	Get(ctx context.Context, id int64) (*domain.CrisisEvent, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Mutate locks the row, applies fn and persists the row with the returned
	// records atomically. before is the locked row as read.
	Mutate(ctx context.Context, id int64, fn MutateFunc) (before, after *domain.CrisisEvent, changes []domain.CrisisEventChange, err error)
	ListByActive(ctx context.Context, active bool) ([]*domain.CrisisEvent, error)
	ListActivePage(ctx context.Context, page domain.PageRequest) ([]*domain.CrisisEvent, int64, error)
}

type ChangeLog interface {
	Query(ctx context.Context, eventID int64, page domain.PageRequest) (domain.Page[domain.CrisisEventChange], error)
}

type ScenarioThemeRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ResidentDirectory interface {
	ListLocated(ctx context.Context) ([]domain.Resident, error)
	Get(ctx context.Context, userID int64) (*domain.Resident, error)
}

// EventCache is versioned: GetActive reports the generation it observed and
// SetActive is a no-op once Invalidate has moved past that generation.
type EventCache interface {
	GetActive(ctx context.Context) ([]*domain.CrisisEvent, int64, error)
	SetActive(ctx context.Context, events []*domain.CrisisEvent, gen int64, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// FanOut accepts notification jobs for asynchronous processing.
type FanOut interface {
	Submit(job domain.FanOutJob) bool
}

type NotificationDispatcher interface {
	Notify(ctx context.Context, resident domain.AffectedResident, event *domain.CrisisEvent, summary domain.ChangeSummary) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type NotificationSource interface {
	Next(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error)
}

type NotificationLog interface {
	// MarkSent records payload and reports false when its dedupe key was
	// already recorded.
	MarkSent(ctx context.Context, payload domain.NotificationPayload) (bool, error)
	Release(ctx context.Context, dedupeKey string) error
}

type NotificationStatsRepository interface {
	CountUniqueUsers(ctx context.Context, minutes int) (int64, error)
	CountTotal(ctx context.Context, minutes int) (int64, error)
}

type Service struct {
	AdminCrisisService  *AdminService
	PublicCrisisService *PublicService
	StatsService        *StatsService
}

func NewService(
	adminCrisisService *AdminService,
	publicCrisisService *PublicService,
	statsService *StatsService,
) *Service {
	return &Service{
		AdminCrisisService:  adminCrisisService,
		PublicCrisisService: publicCrisisService,
		StatsService:        statsService,
	}
}
