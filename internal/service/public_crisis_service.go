package service

import (
	"context"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/geo"
)

func (s *Service) Get(ctx context.Context, id int64) (*domain.CrisisEvent, error) {
	return s.PublicCrisisService.Get(ctx, id)
}

func (s *Service) ListActive(ctx context.Context, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error) {
	return s.PublicCrisisService.ListActive(ctx, page)
}

func (s *Service) ActivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	return s.PublicCrisisService.ActivePreviews(ctx, page)
}

func (s *Service) InactivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	return s.PublicCrisisService.InactivePreviews(ctx, page)
}

func (s *Service) Changes(ctx context.Context, id int64, page domain.PageRequest) (domain.Page[domain.CrisisEventChange], error) {
	return s.PublicCrisisService.Changes(ctx, id, page)
}

func (s *Service) SearchByName(ctx context.Context, req domain.SearchCrisisEventsRequest) (domain.Page[domain.CrisisEventPreview], error) {
	return s.PublicCrisisService.SearchByName(ctx, req)
}

func (s *Service) NearestActive(ctx context.Context, p geo.Point) (*domain.CrisisEvent, error) {
	return s.PublicCrisisService.NearestActive(ctx, p)
}

func (s *Service) AffectedEvents(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error) {
	return s.PublicCrisisService.AffectedEvents(ctx, userID, page)
}

func (s *Service) AffectedPreviews(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error) {
	return s.PublicCrisisService.AffectedPreviews(ctx, userID, page)
}
