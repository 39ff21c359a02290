// internal/models/application.go
package models

import (
	"strings"
	"time"
)

// ApplicationStatus is the review state of a volunteer application.
// Pending is the initial state; Accepted and Rejected are terminal.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// Terminal reports whether no further transition is allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// NormalizeApplicationStatus maps a remote status string onto the canonical
// enum. Matching is case-insensitive by substring; anything unrecognized is
// treated as Pending.
func NormalizeApplicationStatus(raw string) ApplicationStatus {
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(lowered, "accept"):
		return ApplicationAccepted
	case strings.Contains(lowered, "reject"):
		return ApplicationRejected
	default:
		return ApplicationPending
	}
}

// Application is a volunteer's request to join a project. Volunteer fields
// are a snapshot taken at application time, not live references.
type Application struct {
	ID             string            `json:"id"`
	ProjectID      string            `json:"projectId"`
	VolunteerID    string            `json:"volunteerId"`
	VolunteerName  string            `json:"volunteerName"`
	VolunteerEmail string            `json:"volunteerEmail"`
	VolunteerPhone string            `json:"volunteerPhone,omitempty"`
	Skills         []string          `json:"skills"`
	Message        string            `json:"message"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"appliedAt"`
}

// AsVolunteer materializes the membership record an accepted application
// produces.
func (a Application) AsVolunteer() Volunteer {
	return Volunteer{
		ID:     a.VolunteerID,
		Name:   a.VolunteerName,
		Email:  a.VolunteerEmail,
		Skills: append([]string(nil), a.Skills...),
		Status: VolunteerActive,
	}
}
