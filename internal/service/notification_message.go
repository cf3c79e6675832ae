package service

import (
	"fmt"
	"strings"

	"crisisAlert/internal/domain"
)

const (
	maxDescriptionLen = 100
	startTimeLayout   = "02.01.2006 15:04"
)

// BuildMessage renders the text a resident receives for the mutation in
// summary. It returns "" when nothing worth telling the resident changed.
func BuildMessage(event *domain.CrisisEvent, summary domain.ChangeSummary, reason domain.ImpactReason) string {
	if event == nil {
		return ""
	}
	switch summary.Kind {
	case domain.NotificationCreated:
		return newEventMessage(event, reason)
	case domain.NotificationUpdated, domain.NotificationDeactivated:
		changes := describeChanges(event, summary.Changes)
		if changes == "" {
			return ""
		}
		return fmt.Sprintf("Update for '%s': %s You are notified because %s is inside the affected area.",
			event.Name, changes, reasonText(reason))
	default:
		return ""
	}
}

// HasVisibleChanges reports whether summary would produce a message.
func HasVisibleChanges(summary domain.ChangeSummary) bool {
	if summary.Kind == domain.NotificationCreated {
		return true
	}
	for _, c := range summary.Changes {
		if c.Field != domain.FieldScenarioTheme {
			return true
		}
	}
	return false
}

func newEventMessage(event *domain.CrisisEvent, reason domain.ImpactReason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crisis alert: '%s' (%s severity). You are notified because %s is inside the danger zone",
		event.Name, severityText(event.Severity), reasonText(reason))
	if event.Description != nil && *event.Description != "" {
		b.WriteString(". Description: ")
		b.WriteString(truncate(*event.Description, maxDescriptionLen))
	}
	start := "unknown time"
	if !event.StartTime.IsZero() {
		start = event.StartTime.UTC().Format(startTimeLayout)
	}
	fmt.Fprintf(&b, ". Started %s.", start)
	return b.String()
}

func describeChanges(event *domain.CrisisEvent, changes []domain.CrisisEventChange) string {
	var b strings.Builder
	for _, c := range changes {
		switch c.Field {
		case domain.FieldName:
			fmt.Fprintf(&b, "Name changed to '%s'. ", c.NewValue)
		case domain.FieldDescription:
			b.WriteString("Description updated. ")
		case domain.FieldSeverity:
			fmt.Fprintf(&b, "Severity changed to %s. ", severityText(domain.Severity(c.NewValue)))
		case domain.FieldEpicenter:
			b.WriteString("Location updated. ")
		case domain.FieldRadius:
			fmt.Fprintf(&b, "Radius changed to %s meters. ", event.Radius.StringFixed(domain.RadiusScale))
		case domain.FieldActive:
			if event.Active {
				b.WriteString("The event is active again. ")
			} else {
				b.WriteString("The event is now marked as inactive. ")
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func reasonText(reason domain.ImpactReason) string {
	switch reason {
	case domain.ImpactHome:
		return "your location"
	case domain.ImpactHousehold:
		return "your household's location"
	case domain.ImpactBoth:
		return "both your location and your household's location"
	case domain.ImpactSameLocation:
		return "your location/household location"
	default:
		return "your location"
	}
}

func severityText(s domain.Severity) string {
	switch s {
	case domain.SeverityRed:
		return "high"
	case domain.SeverityYellow:
		return "medium"
	case domain.SeverityGreen:
		return "low"
	default:
		return "unknown"
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
