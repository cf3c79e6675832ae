package service

import (
	"cmp"
	"slices"
	"strings"

	"crisisAlert/internal/domain"
)

// compareRanked orders by severity rank descending, then start time
// descending, then id descending.
func compareRanked(a, b *domain.CrisisEvent) int {
	if c := domain.CompareSeverity(b.Severity, a.Severity); c != 0 {
		return c
	}
	if c := b.StartTime.Compare(a.StartTime); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// RankEvents returns a sorted copy of events; the input is not modified.
func RankEvents(events []*domain.CrisisEvent) []*domain.CrisisEvent {
	out := slices.Clone(events)
	slices.SortStableFunc(out, compareRanked)
	return out
}

// Previews ranks events and maps them to previews. Callers decide which
// events are eligible.
func Previews(events []*domain.CrisisEvent) []domain.CrisisEventPreview {
	ranked := RankEvents(events)
	out := make([]domain.CrisisEventPreview, 0, len(ranked))
	for _, ev := range ranked {
		out = append(out, ev.Preview())
	}
	return out
}

// Paginate slices items by offset. A page past the end is empty.
func Paginate[T any](items []T, req domain.PageRequest) domain.Page[T] {
	req = req.Normalize()
	total := int64(len(items))
	start := req.Offset()
	if start < 0 || start >= len(items) {
		return domain.NewPage([]T{}, req, total)
	}
	end := min(start+req.Size, len(items))
	return domain.NewPage(slices.Clone(items[start:end]), req, total)
}

// SearchByName filters events by activity and case-insensitive name
// substring, orders them by start time and paginates the previews.
func SearchByName(events []*domain.CrisisEvent, term string, active bool, req domain.PageRequest) domain.Page[domain.CrisisEventPreview] {
	req = req.Normalize()
	needle := strings.ToLower(strings.TrimSpace(term))

	matched := make([]*domain.CrisisEvent, 0)
	for _, ev := range events {
		if ev.Active != active {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(ev.Name), needle) {
			continue
		}
		matched = append(matched, ev)
	}

	slices.SortStableFunc(matched, func(a, b *domain.CrisisEvent) int {
		c := a.StartTime.Compare(b.StartTime)
		if req.SortDir == domain.SortDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	previews := make([]domain.CrisisEventPreview, 0, len(matched))
	for _, ev := range matched {
		previews = append(previews, ev.Preview())
	}
	return Paginate(previews, req)
}
