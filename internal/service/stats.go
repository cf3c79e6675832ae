package service

import (
	"context"

	"crisisAlert/internal/domain"
)

const defaultStatsMinutes = 60

type StatsService struct {
	repo NotificationStatsRepository
}

func NewStatsService(repo NotificationStatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// GetStats counts notifications recorded in the last req.Minutes minutes.
func (s *StatsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NotificationStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = defaultStatsMinutes
	}

	unique, err := s.repo.CountUniqueUsers(ctx, minutes)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountTotal(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.NotificationStats{
		UserCount:          unique,
		TotalNotifications: total,
		Minutes:            minutes,
	}, nil
}
