package service

import (
	"fmt"
	"strconv"
	"time"

	"crisisAlert/internal/domain"

	"github.com/shopspring/decimal"
)

// changeRecorder stamps audit records with the event, the acting user and
// the mutation time.
type changeRecorder struct {
	eventID int64
	actorID int64
	at      time.Time
	changes []domain.CrisisEventChange
}

func (r *changeRecorder) add(t domain.ChangeType, field string, oldValue *string, newValue string) {
	r.changes = append(r.changes, domain.CrisisEventChange{
		CrisisEventID:   r.eventID,
		ChangeType:      t,
		Field:           field,
		OldValue:        oldValue,
		NewValue:        newValue,
		CreatedByUserID: r.actorID,
		CreatedAt:       r.at,
		UpdatedAt:       r.at,
	})
}

func creationChange(event *domain.CrisisEvent, actorID int64, at time.Time) domain.CrisisEventChange {
	r := changeRecorder{eventID: event.ID, actorID: actorID, at: at}
	r.add(domain.ChangeCreation, "", nil, "Created crisis event: "+event.Name)
	return r.changes[0]
}

func deactivationChange(event *domain.CrisisEvent, actorID int64, at time.Time) domain.CrisisEventChange {
	r := changeRecorder{eventID: event.ID, actorID: actorID, at: at}
	r.add(domain.ChangeLevel, domain.FieldActive, strPtr("true"), "false")
	return r.changes[0]
}

// applyPatch writes every supplied field that differs from cur into cur and
// returns one record per changed field group. StartTime is never touched.
func applyPatch(cur *domain.CrisisEvent, req domain.UpdateCrisisEventRequest, actorID int64, at time.Time) []domain.CrisisEventChange {
	r := changeRecorder{eventID: cur.ID, actorID: actorID, at: at}

	if req.Name != nil && *req.Name != cur.Name {
		r.add(domain.ChangeDescriptionUpdate, domain.FieldName, strPtr(cur.Name), *req.Name)
		cur.Name = *req.Name
	}

	if req.Description != nil && (cur.Description == nil || *cur.Description != *req.Description) {
		var old *string
		if cur.Description != nil {
			old = strPtr(*cur.Description)
		}
		r.add(domain.ChangeDescriptionUpdate, domain.FieldDescription, old, *req.Description)
		cur.Description = strPtr(*req.Description)
	}

	if req.Severity != nil && *req.Severity != cur.Severity {
		r.add(domain.ChangeLevel, domain.FieldSeverity, strPtr(string(cur.Severity)), string(*req.Severity))
		cur.Severity = *req.Severity
	}

	lat, lng := cur.EpicenterLat, cur.EpicenterLng
	if req.Latitude != nil {
		lat = domain.NormalizeCoordinate(*req.Latitude)
	}
	if req.Longitude != nil {
		lng = domain.NormalizeCoordinate(*req.Longitude)
	}
	if !lat.Equal(cur.EpicenterLat) || !lng.Equal(cur.EpicenterLng) {
		old := formatEpicenter(cur.EpicenterLat, cur.EpicenterLng)
		r.add(domain.ChangeEpicenterMoved, domain.FieldEpicenter, &old, formatEpicenter(lat, lng))
		cur.EpicenterLat, cur.EpicenterLng = lat, lng
	}

	if req.Radius != nil {
		radius := domain.NormalizeRadius(*req.Radius)
		if !radius.Equal(cur.Radius) {
			old := cur.Radius.StringFixed(domain.RadiusScale)
			r.add(domain.ChangeEpicenterMoved, domain.FieldRadius, &old, radius.StringFixed(domain.RadiusScale))
			cur.Radius = radius
		}
	}

	if req.ScenarioThemeID != nil && (cur.ScenarioThemeID == nil || *cur.ScenarioThemeID != *req.ScenarioThemeID) {
		var old *string
		if cur.ScenarioThemeID != nil {
			old = strPtr(strconv.FormatInt(*cur.ScenarioThemeID, 10))
		}
		r.add(domain.ChangeDescriptionUpdate, domain.FieldScenarioTheme, old, strconv.FormatInt(*req.ScenarioThemeID, 10))
		id := *req.ScenarioThemeID
		cur.ScenarioThemeID = &id
	}

	if len(r.changes) > 0 {
		cur.UpdatedAt = at
	}
	return r.changes
}

func formatEpicenter(lat, lng decimal.Decimal) string {
	return fmt.Sprintf("%s, %s", lat.StringFixed(domain.CoordinateScale), lng.StringFixed(domain.CoordinateScale))
}

func strPtr(s string) *string {
	return &s
}
