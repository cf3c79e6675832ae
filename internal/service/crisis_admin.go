package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/metrics"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/validator"
)

type AdminService struct {
	repo   CrisisEventRepository
	themes ScenarioThemeRepository
	cache  EventCache
	fanout FanOut
	logger *slog.Logger
	now    func() time.Time
}

func NewAdminCrisisService(
	repo CrisisEventRepository,
	themes ScenarioThemeRepository,
	cache EventCache,
	fanout FanOut,
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		repo:   repo,
		themes: themes,
		cache:  cache,
		fanout: fanout,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminService) Create(ctx context.Context, actor domain.Actor, req domain.CreateCrisisEventRequest) (*domain.CrisisEvent, error) {
	const op = "service.AdminService.Create"

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	req = req.Rounded()
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	if err := s.resolveTheme(ctx, op, req.ScenarioThemeID); err != nil {
		return nil, err
	}

	now := s.now()
	event := &domain.CrisisEvent{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Severity:        req.Severity,
		EpicenterLat:    domain.NormalizeCoordinate(*req.Latitude),
		EpicenterLng:    domain.NormalizeCoordinate(*req.Longitude),
		Radius:          domain.NormalizeRadius(*req.Radius),
		StartTime:       req.StartTime.UTC(),
		UpdatedAt:       now,
		Active:          true,
		CreatedByUserID: actor.UserID,
		ScenarioThemeID: req.ScenarioThemeID,
	}
	creation := creationChange(event, actor.UserID, now)

	if err := s.repo.Create(ctx, event, &creation); err != nil {
		return nil, err
	}
	metrics.CrisisMutations.WithLabelValues("create").Inc()
	s.logger.Info("crisis event created",
		slog.Int64("event_id", event.ID),
		slog.String("severity", string(event.Severity)),
		slog.Int64("user_id", actor.UserID),
	)

	s.afterCommit(ctx, domain.FanOutJob{
		Event: event.Clone(),
		Summary: domain.ChangeSummary{
			Kind:    domain.NotificationCreated,
			Changes: []domain.CrisisEventChange{creation},
		},
	})
	return event, nil
}

func (s *AdminService) Update(ctx context.Context, actor domain.Actor, id int64, req domain.UpdateCrisisEventRequest) (*domain.CrisisEvent, error) {
	const op = "service.AdminService.Update"

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	req = req.Rounded()
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, e.NewValidationError("name", "must not be blank")
	}
	if err := s.resolveTheme(ctx, op, req.ScenarioThemeID); err != nil {
		return nil, err
	}

	now := s.now()
	before, after, changes, err := s.repo.Mutate(ctx, id, func(cur *domain.CrisisEvent) ([]domain.CrisisEventChange, error) {
		return applyPatch(cur, req, actor.UserID, now), nil
	})
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		s.logger.Debug("crisis event update is a no-op", slog.Int64("event_id", id))
		return after, nil
	}

	metrics.CrisisMutations.WithLabelValues("update").Inc()
	s.logger.Info("crisis event updated",
		slog.Int64("event_id", id),
		slog.Int("changes", len(changes)),
		slog.Int64("user_id", actor.UserID),
	)

	s.afterCommit(ctx, domain.FanOutJob{
		Event: after.Clone(),
		Summary: domain.ChangeSummary{
			Kind:     domain.NotificationUpdated,
			Previous: before,
			Changes:  changes,
		},
	})
	return after, nil
}

func (s *AdminService) Deactivate(ctx context.Context, actor domain.Actor, id int64) error {
	const op = "service.AdminService.Deactivate"

	if !actor.IsAdmin() {
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	now := s.now()
	before, after, changes, err := s.repo.Mutate(ctx, id, func(cur *domain.CrisisEvent) ([]domain.CrisisEventChange, error) {
		if !cur.Active {
			return nil, fmt.Errorf("%s: event %d is already inactive: %w", op, id, e.ErrNotFound)
		}
		cur.Active = false
		cur.UpdatedAt = now
		return []domain.CrisisEventChange{deactivationChange(cur, actor.UserID, now)}, nil
	})
	if err != nil {
		return err
	}

	metrics.CrisisMutations.WithLabelValues("deactivate").Inc()
	s.logger.Info("crisis event deactivated", slog.Int64("event_id", id), slog.Int64("user_id", actor.UserID))

	s.afterCommit(ctx, domain.FanOutJob{
		Event: after.Clone(),
		Summary: domain.ChangeSummary{
			Kind:     domain.NotificationDeactivated,
			Previous: before,
			Changes:  changes,
		},
	})
	return nil
}

func (s *AdminService) resolveTheme(ctx context.Context, op string, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.themes.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: scenario theme %d: %w", op, *id, e.ErrUnresolvedReference)
	}
	return nil
}

// afterCommit runs once the mutation is durable. Failures here never reach
// the caller.
func (s *AdminService) afterCommit(ctx context.Context, job domain.FanOutJob) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("active events cache invalidate failed", slog.Any("error", err))
		}
	}
	if s.fanout == nil {
		return
	}
	if !s.fanout.Submit(job) {
		metrics.FanOutJobs.WithLabelValues("rejected").Inc()
		s.logger.Warn("notification fan-out queue full",
			slog.Int64("event_id", job.Event.ID),
			slog.String("kind", string(job.Summary.Kind)),
		)
	}
}

func validateCreate(req domain.CreateCrisisEventRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return e.NewValidationError("name", "is required")
	case req.Severity == "":
		return e.NewValidationError("severity", "is required")
	case req.Latitude == nil:
		return e.NewValidationError("latitude", "is required")
	case req.Longitude == nil:
		return e.NewValidationError("longitude", "is required")
	case req.Radius == nil:
		return e.NewValidationError("radius", "is required")
	case req.StartTime == nil || req.StartTime.IsZero():
		return e.NewValidationError("start_time", "is required")
	}
	return validator.Check(req)
}
