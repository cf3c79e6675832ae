package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationCreated     NotificationKind = "created"
	NotificationUpdated     NotificationKind = "updated"
	NotificationDeactivated NotificationKind = "deactivated"
)

// ChangeSummary describes a committed mutation for notification text.
// Previous is nil for creations.
type ChangeSummary struct {
	Kind     NotificationKind
	Previous *CrisisEvent
	Changes  []CrisisEventChange
}

type NotificationPayload struct {
	ID        uuid.UUID        `json:"id"`
	DedupeKey string           `json:"dedupe_key"`
	UserID    int64            `json:"user_id"`
	EventID   int64            `json:"event_id"`
	Kind      NotificationKind `json:"kind"`
	Severity  Severity         `json:"severity"`
	Reason    ImpactReason     `json:"reason"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

type NotificationStats struct {
	UserCount          int64 `json:"user_count"`
	TotalNotifications int64 `json:"total_notifications"`
	Minutes            int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}

// FanOutJob asks the notification workers to notify residents affected by
// Event about the mutation in Summary.
type FanOutJob struct {
	Event   *CrisisEvent
	Summary ChangeSummary
}
