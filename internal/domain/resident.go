package domain

import "crisisAlert/pkg/geo"

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

type Household struct {
	ID       int64      `json:"id"`
	Location *geo.Point `json:"location,omitempty"`
}

// Resident is a user together with the locations used for impact checks.
type Resident struct {
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Home      *geo.Point `json:"home,omitempty"`
	Household *Household `json:"household,omitempty"`
}

func (r Resident) HouseholdLocation() *geo.Point {
	if r.Household == nil {
		return nil
	}
	return r.Household.Location
}

type ImpactReason string

const (
	ImpactHome         ImpactReason = "home"
	ImpactHousehold    ImpactReason = "household"
	ImpactBoth         ImpactReason = "both"
	ImpactSameLocation ImpactReason = "same_location"
)

type AffectedResident struct {
	Resident Resident
	Reason   ImpactReason
}
