package service

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisisAlert/internal/domain"
)

func ev(id int64, name string, sev domain.Severity, start time.Time, active bool) *domain.CrisisEvent {
	return &domain.CrisisEvent{ID: id, Name: name, Severity: sev, StartTime: start, Active: active}
}

func ids[T any](items []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func previewID(p domain.CrisisEventPreview) int64 { return p.ID }

func TestPreviews_SeverityThenStartThenID(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []*domain.CrisisEvent{
		ev(1, "a", domain.SeverityGreen, t0.Add(5*time.Hour), true),
		ev(2, "b", domain.SeverityRed, t0, true),
		ev(3, "c", domain.SeverityYellow, t0, true),
		ev(4, "d", domain.SeverityRed, t0.Add(time.Hour), true),
		ev(5, "e", domain.SeverityRed, t0, true),
	}

	got := Previews(events)
	assert.Equal(t, []int64{4, 5, 2, 3, 1}, ids(got, previewID))
	assert.Equal(t, int64(1), events[0].ID, "input must not be reordered")
}

func TestPreviews_DoesNotUseStringOrder(t *testing.T) {
	t0 := time.Now()
	// lexical order would be green < red < yellow
	got := Previews([]*domain.CrisisEvent{
		ev(1, "y", domain.SeverityYellow, t0, true),
		ev(2, "g", domain.SeverityGreen, t0, true),
		ev(3, "r", domain.SeverityRed, t0, true),
	})
	assert.Equal(t, []domain.Severity{domain.SeverityRed, domain.SeverityYellow, domain.SeverityGreen},
		[]domain.Severity{got[0].Severity, got[1].Severity, got[2].Severity})
}

func TestPaginate_Boundaries(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	p := Paginate(items, domain.PageRequest{Page: 2, Size: 10})
	assert.Equal(t, []int{20, 21, 22, 23, 24}, p.Items)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)

	p = Paginate(items, domain.PageRequest{Page: 3, Size: 10})
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)

	p = Paginate(items, domain.PageRequest{Page: -1, Size: 0})
	assert.Equal(t, 0, p.Page)
	assert.Len(t, p.Items, domain.DefaultPageSize)

	p = Paginate([]int(nil), domain.DefaultPageRequest())
	assert.NotNil(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)

	huge := domain.PageRequest{Page: math.MaxInt64/10 + 1, Size: 10}
	require.NotPanics(t, func() { p = Paginate(items, huge) })
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(25), p.TotalItems)
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	assert.Equal(t, 20, domain.PageRequest{Page: 2, Size: 10}.Offset())
	assert.Equal(t, 0, domain.PageRequest{Page: -3, Size: 10}.Offset())
	assert.Equal(t, math.MaxInt, domain.PageRequest{Page: math.MaxInt64/10 + 1, Size: 10}.Offset())
	assert.Equal(t, math.MaxInt, domain.PageRequest{Page: math.MaxInt, Size: domain.MaxPageSize}.Offset())
}

func TestPaginate_ResultDoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	p := Paginate(items, domain.PageRequest{Page: 0, Size: 2})
	p.Items[0] = 99
	assert.Equal(t, 1, items[0])
}

func TestSearchByName(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []*domain.CrisisEvent{
		ev(1, "Forest fire north", domain.SeverityRed, t0, true),
		ev(2, "Flood", domain.SeverityRed, t0.Add(time.Hour), true),
		ev(3, "Bush FIRE", domain.SeverityGreen, t0.Add(2*time.Hour), true),
		ev(4, "Old fire", domain.SeverityRed, t0.Add(3*time.Hour), false),
	}

	got := SearchByName(events, "fire", true, domain.PageRequest{Size: 10})
	assert.Equal(t, []int64{3, 1}, ids(got.Items, previewID))

	got = SearchByName(events, "fire", true, domain.PageRequest{Size: 10, SortDir: domain.SortAsc})
	assert.Equal(t, []int64{1, 3}, ids(got.Items, previewID))

	got = SearchByName(events, "fire", false, domain.PageRequest{Size: 10})
	assert.Equal(t, []int64{4}, ids(got.Items, previewID))

	got = SearchByName(events, "", true, domain.PageRequest{Size: 2, Page: 1})
	assert.Equal(t, []int64{1}, ids(got.Items, previewID))
	assert.Equal(t, int64(3), got.TotalItems)
}

func TestRankEvents_Stable(t *testing.T) {
	t0 := time.Now()
	events := make([]*domain.CrisisEvent, 0, 50)
	for i := 0; i < 50; i++ {
		events = append(events, ev(int64(i), fmt.Sprint(i), domain.SeverityYellow, t0, true))
	}
	first := RankEvents(events)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, RankEvents(events))
	}
	assert.Equal(t, int64(49), first[0].ID)
}
