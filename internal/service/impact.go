package service

import (
	"context"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/geo"
)

// ImpactEvaluator decides which residents fall inside a crisis area.
type ImpactEvaluator interface {
	Affects(event *domain.CrisisEvent, resident domain.Resident) (domain.ImpactReason, bool)
	AffectedUsers(ctx context.Context, event *domain.CrisisEvent, residents []domain.Resident) ([]domain.AffectedResident, error)
}

// scanCheckEvery is how many residents are evaluated between context checks.
const scanCheckEvery = 256

// LinearImpactEvaluator checks every resident against the event circle.
type LinearImpactEvaluator struct{}

func NewImpactEvaluator() *LinearImpactEvaluator {
	return &LinearImpactEvaluator{}
}

func (LinearImpactEvaluator) Affects(event *domain.CrisisEvent, r domain.Resident) (domain.ImpactReason, bool) {
	if event == nil {
		return "", false
	}
	center := event.Epicenter()
	radius := event.RadiusMeters()

	home := r.Home
	household := r.HouseholdLocation()

	homeIn := home != nil && geo.IsWithinRadius(center, *home, radius)
	householdIn := household != nil && geo.IsWithinRadius(center, *household, radius)

	switch {
	case homeIn && householdIn:
		if *home == *household {
			return domain.ImpactSameLocation, true
		}
		return domain.ImpactBoth, true
	case homeIn:
		return domain.ImpactHome, true
	case householdIn:
		return domain.ImpactHousehold, true
	default:
		return "", false
	}
}

// AffectedUsers returns the affected residents in input order. The scan stops
// with ctx.Err() once ctx is done.
func (ev LinearImpactEvaluator) AffectedUsers(ctx context.Context, event *domain.CrisisEvent, residents []domain.Resident) ([]domain.AffectedResident, error) {
	out := make([]domain.AffectedResident, 0)
	if event == nil {
		return out, nil
	}
	for i, r := range residents {
		if i%scanCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if reason, ok := ev.Affects(event, r); ok {
			out = append(out, domain.AffectedResident{Resident: r, Reason: reason})
		}
	}
	return out, nil
}
