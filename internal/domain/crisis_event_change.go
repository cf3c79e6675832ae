package domain

import "time"

type ChangeType string

const (
	ChangeCreation          ChangeType = "creation"
	ChangeLevel             ChangeType = "level_change"
	ChangeDescriptionUpdate ChangeType = "description_update"
	ChangeEpicenterMoved    ChangeType = "epicenter_moved"
)

// Attribute groups a change record can describe.
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldSeverity      = "severity"
	FieldEpicenter     = "epicenter"
	FieldRadius        = "radius"
	FieldScenarioTheme = "scenario_theme"
	FieldActive        = "active"
)

// CrisisEventChange is an append-only audit record. Rows are never updated;
// UpdatedAt always equals CreatedAt.
type CrisisEventChange struct {
	ID              int64      `json:"id"`
	CrisisEventID   int64      `json:"crisis_event_id"`
	ChangeType      ChangeType `json:"change_type"`
	Field           string     `json:"field,omitempty"`
	OldValue        *string    `json:"old_value"`
	NewValue        string     `json:"new_value"`
	CreatedByUserID int64      `json:"created_by_user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
