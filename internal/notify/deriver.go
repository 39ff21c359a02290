// internal/notify/deriver.go
package notify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"womenrisehub/internal/models"
)

// Recipient identifies the user notifications are derived for.
type Recipient struct {
	ID    string
	Email string
}

// reminderWindow is how far ahead event reminders fire.
const reminderWindow = 24 * time.Hour

// Recompute derives the notifications the given state implies for the
// recipient that have not been emitted yet. It is a pure function: it never
// mutates projects or existing, and running it twice on unchanged inputs
// returns nothing the second time. Derivation on partial state degrades to
// emitting fewer notifications, never wrong ones.
func Recompute(projects []models.Project, existing []models.Notification, user Recipient, now time.Time) []models.Notification {
	if user.ID == "" {
		return nil
	}

	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[n.DedupKey()] = true
	}

	var fresh []models.Notification
	emit := func(n models.Notification) {
		if seen[n.DedupKey()] {
			return
		}
		seen[n.DedupKey()] = true
		n.ID = "notif-" + uuid.NewString()
		n.UserID = user.ID
		fresh = append(fresh, n)
	}

	for _, project := range projects {
		if project.CreatorID == user.ID {
			// New applications awaiting review on the user's own projects.
			for _, app := range project.Applications {
				if app.Status != models.ApplicationPending {
					continue
				}
				emit(models.Notification{
					Type:         models.NotificationApplicationReceived,
					Title:        "New Application Received",
					Message:      fmt.Sprintf("%s applied to your project %q", app.VolunteerName, project.Title),
					ProjectID:    project.ID,
					ProjectTitle: project.Title,
					SubjectID:    app.VolunteerID,
					CreatedAt:    app.AppliedAt,
				})
			}

			for _, volunteer := range project.Volunteers {
				emit(models.Notification{
					Type:         models.NotificationVolunteerJoined,
					Title:        "New Volunteer Joined",
					Message:      fmt.Sprintf("%s has joined your project %q", volunteer.Name, project.Title),
					ProjectID:    project.ID,
					ProjectTitle: project.Title,
					SubjectID:    volunteer.ID,
					CreatedAt:    now,
				})
			}
		}

		// Outcomes of the user's own applications.
		for _, app := range project.Applications {
			if app.VolunteerID != user.ID {
				continue
			}
			switch app.Status {
			case models.ApplicationAccepted:
				emit(models.Notification{
					Type:         models.NotificationApplicationAccepted,
					Title:        "Application Accepted!",
					Message:      fmt.Sprintf("Your application to %q has been accepted", project.Title),
					ProjectID:    project.ID,
					ProjectTitle: project.Title,
					SubjectID:    user.ID,
					CreatedAt:    app.AppliedAt,
				})
			case models.ApplicationRejected:
				emit(models.Notification{
					Type:         models.NotificationApplicationRejected,
					Title:        "Application Update",
					Message:      fmt.Sprintf("Your application to %q was not accepted this time", project.Title),
					ProjectID:    project.ID,
					ProjectTitle: project.Title,
					SubjectID:    user.ID,
					CreatedAt:    app.AppliedAt,
				})
			}
		}

		// Upcoming-event reminders for projects the user belongs to.
		if !isParticipant(project, user) {
			continue
		}
		for _, event := range project.Events {
			start, ok := parseEventStart(event.Date, event.Time)
			if !ok {
				continue
			}
			until := start.Sub(now)
			if until <= 0 || until > reminderWindow {
				continue
			}
			hours := int(math.Round(until.Hours()))
			emit(models.Notification{
				Type:         models.NotificationEventReminder,
				Title:        "Upcoming Event Reminder",
				Message:      fmt.Sprintf("%q for project %q starts in %d hours", event.Name, project.Title, hours),
				ProjectID:    project.ID,
				ProjectTitle: project.Title,
				SubjectID:    event.ID,
				CreatedAt:    now,
			})
		}
	}

	return fresh
}

func isParticipant(project models.Project, user Recipient) bool {
	if project.CreatorID == user.ID {
		return true
	}
	for _, v := range project.Volunteers {
		if v.Email != "" && v.Email == user.Email {
			return true
		}
		if v.ID == user.ID {
			return true
		}
	}
	return false
}

var eventTimeLayouts = []string{"3:04 PM", "15:04", "3 PM"}

// parseEventStart combines the calendar date with the free-form clock field.
// Time strings like "9:00 AM - 5:00 PM" contribute their start; anything
// unparseable falls back to midnight of the event date.
func parseEventStart(date, clock string) (time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	clock = strings.TrimSpace(clock)
	if i := strings.Index(clock, " - "); i >= 0 {
		clock = strings.TrimSpace(clock[:i])
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, clock, time.Local); err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), true
		}
	}
	return day, true
}
