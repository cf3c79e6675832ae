package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/service"
	mock_service "crisisAlert/internal/service/mocks"
)

// memCache mirrors the generation semantics of the redis event cache.
type memCache struct {
	mu     sync.Mutex
	gen    int64
	events []*domain.CrisisEvent
}

func (c *memCache) GetActive(context.Context) ([]*domain.CrisisEvent, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events, c.gen, nil
}

func (c *memCache) SetActive(_ context.Context, events []*domain.CrisisEvent, gen int64, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	if events == nil {
		events = []*domain.CrisisEvent{}
	}
	c.events = events
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.events = nil
	return nil
}

func TestActivePreviews_StaleLoadDoesNotOutliveDeactivate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockCrisisEventRepository(ctrl)
	themes := mock_service.NewMockScenarioThemeRepository(ctrl)
	cache := &memCache{}

	ev := trondheim(1)
	ev.Severity = domain.SeverityRed

	loading := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	repo.EXPECT().ListByActive(gomock.Any(), true).
		DoAndReturn(func(context.Context, bool) ([]*domain.CrisisEvent, error) {
			if calls.Add(1) == 1 {
				close(loading)
				<-release
				return []*domain.CrisisEvent{ev.Clone()}, nil
			}
			return []*domain.CrisisEvent{}, nil
		}).
		Times(2)
	repo.EXPECT().Mutate(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(mutateOn(ev))

	adminSvc := service.NewAdminCrisisService(repo, themes, cache, nil, discardLogger())
	publicSvc := service.NewPublicCrisisService(repo, nil, nil, cache, service.NewImpactEvaluator(), time.Minute, discardLogger())

	done := make(chan error, 1)
	go func() {
		_, err := publicSvc.ActivePreviews(context.Background(), domain.DefaultPageRequest())
		done <- err
	}()

	<-loading
	if err := adminSvc.Deactivate(context.Background(), admin, 1); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first read: %v", err)
	}

	page, err := publicSvc.ActivePreviews(context.Background(), domain.DefaultPageRequest())
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("deactivated event still served from cache: %+v", page.Items)
	}
}

func TestActivePreviews_FillsCacheWhenGenerationUnchanged(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockCrisisEventRepository(ctrl)
	cache := &memCache{gen: 3}

	repo.EXPECT().ListByActive(gomock.Any(), true).Return([]*domain.CrisisEvent{trondheim(1)}, nil).Times(1)

	publicSvc := service.NewPublicCrisisService(repo, nil, nil, cache, service.NewImpactEvaluator(), time.Minute, discardLogger())
	for i := 0; i < 2; i++ {
		page, err := publicSvc.ActivePreviews(context.Background(), domain.DefaultPageRequest())
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if len(page.Items) != 1 {
			t.Fatalf("read %d: got %d previews", i, len(page.Items))
		}
	}
}
