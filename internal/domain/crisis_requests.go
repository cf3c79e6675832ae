package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCrisisEventRequest struct {
	Name            string           `json:"name" validate:"max=255"`
	Description     *string          `json:"description" validate:"omitempty,max=5000"`
	Severity        Severity         `json:"severity" validate:"omitempty,severity"`
	Latitude        *decimal.Decimal `json:"latitude" validate:"omitempty,lat"`
	Longitude       *decimal.Decimal `json:"longitude" validate:"omitempty,lng"`
	Radius          *decimal.Decimal `json:"radius" validate:"omitempty,radius_m"`
	StartTime       *time.Time       `json:"start_time"`
	ScenarioThemeID *int64           `json:"scenario_theme_id" validate:"omitempty,min=1"`
}

// Rounded returns a copy with coordinates and radius at storage scale, so
// range checks see the value that will be persisted.
func (r CreateCrisisEventRequest) Rounded() CreateCrisisEventRequest {
	r.Latitude = roundedPtr(r.Latitude, CoordinateScale)
	r.Longitude = roundedPtr(r.Longitude, CoordinateScale)
	r.Radius = roundedPtr(r.Radius, RadiusScale)
	return r
}

// UpdateCrisisEventRequest is a patch: nil fields are left unchanged.
// StartTime is accepted on the wire and ignored.
type UpdateCrisisEventRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string          `json:"description" validate:"omitempty,max=5000"`
	Severity        *Severity        `json:"severity" validate:"omitempty,severity"`
	Latitude        *decimal.Decimal `json:"latitude" validate:"omitempty,lat"`
	Longitude       *decimal.Decimal `json:"longitude" validate:"omitempty,lng"`
	Radius          *decimal.Decimal `json:"radius" validate:"omitempty,radius_m"`
	StartTime       *time.Time       `json:"start_time,omitempty"`
	ScenarioThemeID *int64           `json:"scenario_theme_id" validate:"omitempty,min=1"`
}

// Empty reports whether the patch carries no mutable field.
func (r UpdateCrisisEventRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Severity == nil &&
		r.Latitude == nil && r.Longitude == nil && r.Radius == nil &&
		r.ScenarioThemeID == nil
}

func (r UpdateCrisisEventRequest) Rounded() UpdateCrisisEventRequest {
	r.Latitude = roundedPtr(r.Latitude, CoordinateScale)
	r.Longitude = roundedPtr(r.Longitude, CoordinateScale)
	r.Radius = roundedPtr(r.Radius, RadiusScale)
	return r
}

func roundedPtr(d *decimal.Decimal, places int32) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Round(places)
	return &v
}

type SearchCrisisEventsRequest struct {
	Query  string
	Active bool
	Page   PageRequest
}
