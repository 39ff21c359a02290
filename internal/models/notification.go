// internal/models/notification.go
package models

import (
	"fmt"
	"time"
)

// NotificationType enumerates the derivable notification kinds.
type NotificationType string

const (
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationApplicationAccepted NotificationType = "application_accepted"
	NotificationApplicationRejected NotificationType = "application_rejected"
	NotificationProjectMatch        NotificationType = "project_match"
	NotificationVolunteerJoined     NotificationType = "volunteer_joined"
	NotificationEventReminder       NotificationType = "event_reminder"
)

// Notification is a derived, ephemeral fact about a state change relevant to
// one user. SubjectID identifies what the notification is about (an applicant,
// a volunteer, an event) and feeds the dedup key; it is never shown to users.
type Notification struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	ProjectID    string           `json:"projectId,omitempty"`
	ProjectTitle string           `json:"projectTitle,omitempty"`
	SubjectID    string           `json:"subjectId,omitempty"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// DedupKey is the stable composite identity of the underlying logical event.
// Re-deriving on unchanged state always produces the same keys, so duplicates
// are suppressed deterministically.
func (n Notification) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", n.Type, n.ProjectID, n.SubjectID)
}
