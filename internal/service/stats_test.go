package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/service"
	mock_service "crisisAlert/internal/service/mocks"
)

func TestStatsService_GetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockNotificationStatsRepository(ctrl)
	repo.EXPECT().CountUniqueUsers(gomock.Any(), 15).Return(int64(4), nil).Times(1)
	repo.EXPECT().CountTotal(gomock.Any(), 15).Return(int64(9), nil).Times(1)

	got, err := service.NewStatsService(repo).GetStats(context.Background(), domain.StatsRequest{Minutes: 15})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := &domain.NotificationStats{UserCount: 4, TotalNotifications: 9, Minutes: 15}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected stats: got=%+v want=%+v", got, want)
	}
}

func TestStatsService_GetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockNotificationStatsRepository(ctrl)
	repo.EXPECT().CountUniqueUsers(gomock.Any(), 60).Return(int64(0), nil).Times(1)
	repo.EXPECT().CountTotal(gomock.Any(), 60).Return(int64(0), nil).Times(1)

	got, err := service.NewStatsService(repo).GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Minutes != 60 {
		t.Fatalf("minutes = %d, want 60", got.Minutes)
	}
}

func TestStatsService_GetStats_ErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("db down")
	repo := mock_service.NewMockNotificationStatsRepository(ctrl)
	repo.EXPECT().CountUniqueUsers(gomock.Any(), 30).Return(int64(0), wantErr).Times(1)
	repo.EXPECT().CountTotal(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.NewStatsService(repo).GetStats(context.Background(), domain.StatsRequest{Minutes: 30})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected err=%v got=%v", wantErr, err)
	}
}

func TestService_GetStats_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockNotificationStatsRepository(ctrl)
	repo.EXPECT().CountUniqueUsers(gomock.Any(), 5).Return(int64(1), nil)
	repo.EXPECT().CountTotal(gomock.Any(), 5).Return(int64(2), nil)

	svc := service.NewService(nil, nil, service.NewStatsService(repo))
	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalNotifications != 2 {
		t.Fatalf("total = %d, want 2", got.TotalNotifications)
	}
}
