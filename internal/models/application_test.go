// internal/models/application_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeApplicationStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected ApplicationStatus
	}{
		{name: "canonical accepted", raw: "Accepted", expected: ApplicationAccepted},
		{name: "lowercase accepted", raw: "accepted", expected: ApplicationAccepted},
		{name: "partial accept", raw: "ACCEPT", expected: ApplicationAccepted},
		{name: "canonical rejected", raw: "Rejected", expected: ApplicationRejected},
		{name: "rejection variant", raw: "rejection", expected: ApplicationRejected},
		{name: "pending", raw: "Pending", expected: ApplicationPending},
		{name: "unknown becomes pending", raw: "in_review", expected: ApplicationPending},
		{name: "empty becomes pending", raw: "", expected: ApplicationPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeApplicationStatus(tt.raw))
		})
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.False(t, ApplicationPending.Terminal())
	assert.True(t, ApplicationAccepted.Terminal())
	assert.True(t, ApplicationRejected.Terminal())
}

func TestAsVolunteer(t *testing.T) {
	app := Application{
		ID:             "a1",
		ProjectID:      "p1",
		VolunteerID:    "u42",
		VolunteerName:  "Meera Nair",
		VolunteerEmail: "meera@example.org",
		Skills:         []string{"Teaching", "Organization"},
		Status:         ApplicationAccepted,
	}

	v := app.AsVolunteer()
	assert.Equal(t, "u42", v.ID)
	assert.Equal(t, "Meera Nair", v.Name)
	assert.Equal(t, "meera@example.org", v.Email)
	assert.Equal(t, []string{"Teaching", "Organization"}, v.Skills)
	assert.Equal(t, VolunteerActive, v.Status)

	// Skills are a snapshot, not an alias.
	v.Skills[0] = "changed"
	assert.Equal(t, "Teaching", app.Skills[0])
}

func TestProjectClone(t *testing.T) {
	p := SeedProjects()[0]
	p.Applications = []Application{{ID: "a1", Skills: []string{"Teaching"}}}

	clone := p.Clone()
	clone.SkillsNeeded[0] = "changed"
	clone.Events[0].Name = "changed"
	clone.Applications[0].Skills[0] = "changed"

	assert.Equal(t, "Mentoring", p.SkillsNeeded[0])
	assert.Equal(t, "Kickoff Meeting", p.Events[0].Name)
	assert.Equal(t, "Teaching", p.Applications[0].Skills[0])
}

func TestNotificationDedupKey(t *testing.T) {
	a := Notification{Type: NotificationVolunteerJoined, ProjectID: "p1", SubjectID: "u1"}
	b := Notification{Type: NotificationVolunteerJoined, ProjectID: "p1", SubjectID: "u1", ID: "different", Read: true}
	c := Notification{Type: NotificationVolunteerJoined, ProjectID: "p1", SubjectID: "u2"}

	assert.Equal(t, a.DedupKey(), b.DedupKey())
	assert.NotEqual(t, a.DedupKey(), c.DedupKey())
}
