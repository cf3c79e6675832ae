package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/metrics"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/geo"
)

type PublicService struct {
	repo      CrisisEventRepository
	changes   ChangeLog
	residents ResidentDirectory
	cache     EventCache
	impact    ImpactEvaluator
	cacheTTL  time.Duration
	logger    *slog.Logger
}

func NewPublicCrisisService(
	repo CrisisEventRepository,
	changes ChangeLog,
	residents ResidentDirectory,
	cache EventCache,
	impact ImpactEvaluator,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *PublicService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &PublicService{
		repo:      repo,
		changes:   changes,
		residents: residents,
		cache:     cache,
		impact:    impact,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *PublicService) Get(ctx context.Context, id int64) (*domain.CrisisEvent, error) {
	return s.repo.Get(ctx, id)
}

func (s *PublicService) ListActive(ctx context.Context, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error) {
	page = page.Normalize()
	items, total, err := s.repo.ListActivePage(ctx, page)
	if err != nil {
		return domain.Page[*domain.CrisisEvent]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

func (s *PublicService) ActivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	events, err := s.activeEvents(ctx)
	if err != nil {
		return domain.Page[domain.CrisisEventPreview]{}, err
	}
	return Paginate(Previews(events), page), nil
}

func (s *PublicService) InactivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	events, err := s.repo.ListByActive(ctx, false)
	if err != nil {
		return domain.Page[domain.CrisisEventPreview]{}, err
	}
	return Paginate(Previews(events), page), nil
}

func (s *PublicService) Changes(ctx context.Context, id int64, page domain.PageRequest) (domain.Page[domain.CrisisEventChange], error) {
	const op = "service.PublicService.Changes"

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return domain.Page[domain.CrisisEventChange]{}, err
	}
	if !ok {
		return domain.Page[domain.CrisisEventChange]{}, fmt.Errorf("%s: event %d: %w", op, id, e.ErrNotFound)
	}
	return s.changes.Query(ctx, id, page.Normalize())
}

// AffectedEvents returns the active events whose area covers the caller's
// home or household, ranked by severity.
func (s *PublicService) AffectedEvents(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error) {
	affected, err := s.affectedEvents(ctx, userID)
	if err != nil {
		return domain.Page[*domain.CrisisEvent]{}, err
	}
	return Paginate(RankEvents(affected), page), nil
}

func (s *PublicService) AffectedPreviews(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	affected, err := s.affectedEvents(ctx, userID)
	if err != nil {
		return domain.Page[domain.CrisisEventPreview]{}, err
	}
	return Paginate(Previews(affected), page), nil
}

func (s *PublicService) SearchByName(ctx context.Context, req domain.SearchCrisisEventsRequest) (domain.Page[domain.CrisisEventPreview], error) {
	events, err := s.repo.ListByActive(ctx, req.Active)
	if err != nil {
		return domain.Page[domain.CrisisEventPreview]{}, err
	}
	return SearchByName(events, req.Query, req.Active, req.Page), nil
}

// NearestActive returns the active event whose epicenter is closest to p.
func (s *PublicService) NearestActive(ctx context.Context, p geo.Point) (*domain.CrisisEvent, error) {
	const op = "service.PublicService.NearestActive"

	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	events, err := s.activeEvents(ctx)
	if err != nil {
		return nil, err
	}
	nearest, ok := geo.Nearest(p, events, (*domain.CrisisEvent).Epicenter)
	if !ok {
		return nil, fmt.Errorf("%s: no active events: %w", op, e.ErrNotFound)
	}
	return nearest, nil
}

func (s *PublicService) affectedEvents(ctx context.Context, userID int64) ([]*domain.CrisisEvent, error) {
	resident, err := s.residents.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	events, err := s.activeEvents(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.CrisisEvent, 0)
	for _, ev := range events {
		if _, ok := s.impact.Affects(ev, *resident); ok {
			out = append(out, ev)
		}
	}
	s.logger.Debug("affected events resolved",
		slog.Int64("user_id", userID),
		slog.Int("active", len(events)),
		slog.Int("affected", len(out)),
	)
	return out, nil
}

// activeEvents reads through the cache. Cache failures fall back to the
// store. The write-back carries the generation seen on the miss, so a list
// loaded before a concurrent invalidation is dropped.
func (s *PublicService) activeEvents(ctx context.Context) ([]*domain.CrisisEvent, error) {
	writeBack := false
	var gen int64
	if s.cache != nil {
		cached, g, err := s.cache.GetActive(ctx)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			s.logger.Warn("active events cache read failed", slog.Any("error", err))
		case cached != nil:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
			gen, writeBack = g, true
		}
	}

	events, err := s.repo.ListByActive(ctx, true)
	if err != nil {
		return nil, err
	}
	if writeBack {
		if err := s.cache.SetActive(ctx, events, gen, s.cacheTTL); err != nil {
			s.logger.Warn("active events cache write failed", slog.Any("error", err))
		}
	}
	return events, nil
}
