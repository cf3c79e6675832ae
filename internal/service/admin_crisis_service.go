package service

import (
	"context"

	"crisisAlert/internal/domain"
)

func (s *Service) Create(ctx context.Context, actor domain.Actor, req domain.CreateCrisisEventRequest) (*domain.CrisisEvent, error) {
	return s.AdminCrisisService.Create(ctx, actor, req)
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req domain.UpdateCrisisEventRequest) (*domain.CrisisEvent, error) {
	return s.AdminCrisisService.Update(ctx, actor, id, req)
}

func (s *Service) Deactivate(ctx context.Context, actor domain.Actor, id int64) error {
	return s.AdminCrisisService.Deactivate(ctx, actor, id)
}

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NotificationStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
