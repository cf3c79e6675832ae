package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/service"
	mock_service "crisisAlert/internal/service/mocks"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/geo"
)

type publicDeps struct {
	repo      *mock_service.MockCrisisEventRepository
	changes   *mock_service.MockChangeLog
	residents *mock_service.MockResidentDirectory
	cache     *mock_service.MockEventCache
	svc       *service.PublicService
}

func newPublicDeps(t *testing.T) *publicDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := &publicDeps{
		repo:      mock_service.NewMockCrisisEventRepository(ctrl),
		changes:   mock_service.NewMockChangeLog(ctrl),
		residents: mock_service.NewMockResidentDirectory(ctrl),
		cache:     mock_service.NewMockEventCache(ctrl),
	}
	d.svc = service.NewPublicCrisisService(d.repo, d.changes, d.residents, d.cache, service.NewImpactEvaluator(), time.Minute, discardLogger())
	return d
}

func at(id int64, sev domain.Severity, lat, lng string) *domain.CrisisEvent {
	ev := trondheim(id)
	ev.Severity = sev
	ev.EpicenterLat = decimal.RequireFromString(lat)
	ev.EpicenterLng = decimal.RequireFromString(lng)
	return ev
}

func TestPublicService_ActivePreviews_CacheHit(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.cache.EXPECT().GetActive(gomock.Any()).Return([]*domain.CrisisEvent{
		at(1, domain.SeverityGreen, "0", "0"),
		at(2, domain.SeverityRed, "0", "0"),
	}, int64(0), nil)
	d.repo.EXPECT().ListByActive(gomock.Any(), gomock.Any()).Times(0)

	page, err := d.svc.ActivePreviews(context.Background(), domain.DefaultPageRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].ID != 2 {
		t.Fatalf("expected red event first, got %+v", page.Items)
	}
}

func TestPublicService_ActivePreviews_CacheMissFillsCache(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	events := []*domain.CrisisEvent{at(1, domain.SeverityGreen, "0", "0")}
	d.cache.EXPECT().GetActive(gomock.Any()).Return(nil, int64(4), nil)
	d.repo.EXPECT().ListByActive(gomock.Any(), true).Return(events, nil)
	d.cache.EXPECT().SetActive(gomock.Any(), events, int64(4), time.Minute).Return(nil)

	page, err := d.svc.ActivePreviews(context.Background(), domain.DefaultPageRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalItems != 1 {
		t.Fatalf("total = %d, want 1", page.TotalItems)
	}
}

func TestPublicService_ActivePreviews_CacheErrorFallsBack(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.cache.EXPECT().GetActive(gomock.Any()).Return(nil, int64(0), errors.New("redis down"))
	d.repo.EXPECT().ListByActive(gomock.Any(), true).Return(nil, nil)
	d.cache.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	page, err := d.svc.ActivePreviews(context.Background(), domain.PageRequest{Page: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", page.Items)
	}
}

func TestPublicService_InactivePreviews(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	old := at(3, domain.SeverityYellow, "0", "0")
	old.Active = false
	d.repo.EXPECT().ListByActive(gomock.Any(), false).Return([]*domain.CrisisEvent{old}, nil)

	page, err := d.svc.InactivePreviews(context.Background(), domain.DefaultPageRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestPublicService_Changes_NotFound(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.repo.EXPECT().Exists(gomock.Any(), int64(9)).Return(false, nil)
	d.changes.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.Changes(context.Background(), 9, domain.DefaultPageRequest())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublicService_Changes_NormalizesPage(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.repo.EXPECT().Exists(gomock.Any(), int64(9)).Return(true, nil)
	d.changes.EXPECT().
		Query(gomock.Any(), int64(9), domain.PageRequest{Page: 0, Size: domain.MaxPageSize, SortDir: domain.SortDesc}).
		Return(domain.Page[domain.CrisisEventChange]{}, nil)

	if _, err := d.svc.Changes(context.Background(), 9, domain.PageRequest{Size: 1000}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestPublicService_AffectedPreviews(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.residents.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Resident{
		UserID: 5,
		Home:   &geo.Point{Lat: 63.4305, Lng: 10.3951},
	}, nil)
	d.cache.EXPECT().GetActive(gomock.Any()).Return([]*domain.CrisisEvent{
		at(1, domain.SeverityYellow, "63.4305", "10.3951"),
		at(2, domain.SeverityRed, "59.9139", "10.7522"),
		at(3, domain.SeverityRed, "63.4310", "10.3950"),
	}, int64(0), nil)

	page, err := d.svc.AffectedPreviews(context.Background(), 5, domain.DefaultPageRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].ID != 3 || page.Items[1].ID != 1 {
		t.Fatalf("unexpected previews: %+v", page.Items)
	}
}

func TestPublicService_AffectedEvents_UnknownUser(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.residents.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, e.Wrap("postgres.Residents.Get", e.ErrNotFound))

	_, err := d.svc.AffectedEvents(context.Background(), 5, domain.DefaultPageRequest())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublicService_NearestActive(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.cache.EXPECT().GetActive(gomock.Any()).Return([]*domain.CrisisEvent{
		at(1, domain.SeverityGreen, "59.9139", "10.7522"),
		at(2, domain.SeverityGreen, "63.4305", "10.3951"),
		at(3, domain.SeverityRed, "63.4305", "10.3951"),
	}, int64(0), nil).Times(2)

	got, err := d.svc.NearestActive(context.Background(), geo.Point{Lat: 63.43, Lng: 10.39})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected first of tied events, got %d", got.ID)
	}

	again, _ := d.svc.NearestActive(context.Background(), geo.Point{Lat: 63.43, Lng: 10.39})
	if again.ID != got.ID {
		t.Fatalf("nearest is not deterministic")
	}
}

func TestPublicService_NearestActive_Empty(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.cache.EXPECT().GetActive(gomock.Any()).Return([]*domain.CrisisEvent{}, int64(0), nil)

	_, err := d.svc.NearestActive(context.Background(), geo.Point{Lat: 1, Lng: 1})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublicService_NearestActive_BadCoordinates(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	_, err := d.svc.NearestActive(context.Background(), geo.Point{Lat: 100, Lng: 1})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestPublicService_ListActive(t *testing.T) {
	t.Parallel()
	d := newPublicDeps(t)

	d.repo.EXPECT().
		ListActivePage(gomock.Any(), domain.PageRequest{Page: 1, Size: 2, SortDir: domain.SortAsc}).
		Return([]*domain.CrisisEvent{trondheim(3)}, int64(3), nil)

	page, err := d.svc.ListActive(context.Background(), domain.PageRequest{Page: 1, Size: 2, SortDir: domain.SortAsc})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalPages != 2 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
