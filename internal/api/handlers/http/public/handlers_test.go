package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"crisisAlert/internal/api/handlers/http/public"
	mock_public "crisisAlert/internal/api/handlers/http/public/mocks"
	"crisisAlert/internal/domain"
	"crisisAlert/internal/middleware"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/geo"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockCrisisReader, *mock_public.MockAffectedReader) {
	crisis := mock_public.NewMockCrisisReader(ctrl)
	affected := mock_public.NewMockAffectedReader(ctrl)
	return public.NewHandler(newTestLogger(), crisis, affected), crisis, affected
}

func TestGetCrisisEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)
	gomock.InOrder(
		crisis.EXPECT().Get(gomock.Any(), int64(4)).Return(&domain.CrisisEvent{ID: 4, Name: "Flood"}, nil),
		crisis.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, fmt.Errorf("get: %w", e.ErrNotFound)),
	)

	for _, want := range []int{http.StatusOK, http.StatusNotFound} {
		req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/4", nil), "id", "4")
		rr := httptest.NewRecorder()

		h.GetCrisisEvent(rr, req)

		if rr.Code != want {
			t.Fatalf("expected %d got %d, body=%s", want, rr.Code, rr.Body.String())
		}
	}
}

func TestActivePreviews_PageQuery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)

	want := domain.PageRequest{Page: 2, Size: 5, SortDir: domain.SortAsc}
	crisis.EXPECT().
		ActivePreviews(gomock.Any(), want).
		Return(domain.NewPage([]domain.CrisisEventPreview{{ID: 1, Name: "a"}}, want, 11), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/previews?page=2&size=5&sort=startTime,asc", nil)
	rr := httptest.NewRecorder()

	h.ActivePreviews(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var got domain.Page[domain.CrisisEventPreview]
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.TotalItems != 11 || got.TotalPages != 3 || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestInactivePreviews_DefaultPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)
	crisis.EXPECT().
		InactivePreviews(gomock.Any(), domain.DefaultPageRequest()).
		Return(domain.NewPage[domain.CrisisEventPreview](nil, domain.DefaultPageRequest(), 0), nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.InactivePreviews(rr, httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/inactive/previews", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"content":[]`)) {
		t.Fatalf("empty page must serialize as []: %s", rr.Body.String())
	}
}

func TestPageQuery_Invalid_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	for _, q := range []string{"page=x", "size=1.5", "sort=name,asc", "sort=startTime,sideways"} {
		rr := httptest.NewRecorder()
		h.ListActive(rr, httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events?"+q, nil))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d got %d", q, http.StatusBadRequest, rr.Code)
		}
	}
}

func TestChanges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)
	crisis.EXPECT().
		Changes(gomock.Any(), int64(8), domain.DefaultPageRequest()).
		Return(domain.NewPage([]domain.CrisisEventChange{{ID: 2, CrisisEventID: 8, ChangeType: domain.ChangeLevel}}, domain.DefaultPageRequest(), 1), nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/8/changes", nil), "id", "8")
	rr := httptest.NewRecorder()

	h.Changes(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)
	crisis.EXPECT().
		SearchByName(gomock.Any(), domain.SearchCrisisEventsRequest{Query: "flo", Active: false, Page: domain.DefaultPageRequest()}).
		Return(domain.NewPage[domain.CrisisEventPreview](nil, domain.DefaultPageRequest(), 0), nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/search?q=flo&active=false", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	rr = httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/search?q=flo&active=maybe", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestNearest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, crisis, _ := newHandler(ctrl)
	gomock.InOrder(
		crisis.EXPECT().NearestActive(gomock.Any(), geo.Point{Lat: 63.43, Lng: 10.39}).Return(&domain.CrisisEvent{ID: 1}, nil),
		crisis.EXPECT().NearestActive(gomock.Any(), geo.Point{Lat: 91, Lng: 0}).Return(nil, e.ErrInvalidCoordinates),
		crisis.EXPECT().NearestActive(gomock.Any(), geo.Point{Lat: 0, Lng: 0}).Return(nil, e.ErrNotFound),
	)

	cases := []struct {
		query string
		want  int
	}{
		{"lat=63.43&lng=10.39", http.StatusOK},
		{"lat=91&lng=0", http.StatusBadRequest},
		{"lat=0&lng=0", http.StatusNotFound},
		{"lat=abc&lng=0", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		h.Nearest(rr, httptest.NewRequest(http.MethodGet, "/api/v1/public/crisis-events/nearest?"+tc.query, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.query, tc.want, rr.Code)
		}
	}
}

func TestAffectedPreviews(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, affected := newHandler(ctrl)
	affected.EXPECT().
		AffectedPreviews(gomock.Any(), int64(42), domain.DefaultPageRequest()).
		Return(domain.NewPage([]domain.CrisisEventPreview{{ID: 3}}, domain.DefaultPageRequest(), 1), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/crisis-events/previews", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 42, Role: domain.RoleUser}))
	rr := httptest.NewRecorder()

	h.AffectedPreviews(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestAffectedEvents_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, affected := newHandler(ctrl)

	rr := httptest.NewRecorder()
	h.AffectedEvents(rr, httptest.NewRequest(http.MethodGet, "/api/v1/user/crisis-events", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}

	affected.EXPECT().
		AffectedEvents(gomock.Any(), int64(5), gomock.Any()).
		Return(domain.Page[*domain.CrisisEvent]{}, errors.New("db down")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/crisis-events", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 5, Role: domain.RoleUser}))
	rr = httptest.NewRecorder()
	h.AffectedEvents(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
