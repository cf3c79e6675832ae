package domain

import (
	"cmp"
	"time"

	"github.com/shopspring/decimal"

	"crisisAlert/pkg/geo"
)

type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
)

// severityRank is the display order of severities, highest first when sorted
// descending. It is independent of the string values.
var severityRank = map[Severity]int{
	SeverityRed:    3,
	SeverityYellow: 2,
	SeverityGreen:  1,
}

// Rank returns the ranking weight of s, or 0 for an unknown severity.
func (s Severity) Rank() int {
	return severityRank[s]
}

func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// CompareSeverity orders a and b by rank: -1 if a ranks lower, 1 if higher.
func CompareSeverity(a, b Severity) int {
	return cmp.Compare(a.Rank(), b.Rank())
}

// Scales used by the crisis_events numeric columns.
const (
	CoordinateScale = 7
	RadiusScale     = 2
)

type CrisisEvent struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Severity        Severity        `json:"severity"`
	EpicenterLat    decimal.Decimal `json:"epicenter_latitude"`
	EpicenterLng    decimal.Decimal `json:"epicenter_longitude"`
	Radius          decimal.Decimal `json:"radius"` // meters
	StartTime       time.Time       `json:"start_time"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Active          bool            `json:"active"`
	CreatedByUserID int64           `json:"created_by_user_id"`
	ScenarioThemeID *int64          `json:"scenario_theme_id,omitempty"`
}

func (c *CrisisEvent) Epicenter() geo.Point {
	lat, _ := c.EpicenterLat.Float64()
	lng, _ := c.EpicenterLng.Float64()
	return geo.Point{Lat: lat, Lng: lng}
}

func (c *CrisisEvent) RadiusMeters() float64 {
	r, _ := c.Radius.Float64()
	return r
}

// Clone returns a deep copy so snapshots taken before a mutation stay intact.
func (c *CrisisEvent) Clone() *CrisisEvent {
	if c == nil {
		return nil
	}
	out := *c
	if c.Description != nil {
		d := *c.Description
		out.Description = &d
	}
	if c.ScenarioThemeID != nil {
		id := *c.ScenarioThemeID
		out.ScenarioThemeID = &id
	}
	return &out
}

type CrisisEventPreview struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Severity  Severity  `json:"severity"`
	StartTime time.Time `json:"start_time"`
}

func (c *CrisisEvent) Preview() CrisisEventPreview {
	return CrisisEventPreview{
		ID:        c.ID,
		Name:      c.Name,
		Severity:  c.Severity,
		StartTime: c.StartTime,
	}
}

func NormalizeCoordinate(d decimal.Decimal) decimal.Decimal {
	return d.Round(CoordinateScale)
}

func NormalizeRadius(d decimal.Decimal) decimal.Decimal {
	return d.Round(RadiusScale)
}

type ScenarioTheme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
