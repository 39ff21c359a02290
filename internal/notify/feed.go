// internal/notify/feed.go
package notify

import (
	"time"

	"github.com/google/uuid"

	"womenrisehub/internal/common/logger"
	"womenrisehub/internal/common/metrics"
	"womenrisehub/internal/models"
)

// Feed owns the per-session notification list. Derivation appends via
// Apply; user actions mutate read/deleted state. The feed never touches
// project or application data.
type Feed struct {
	user          Recipient
	notifications []models.Notification
	log           logger.Logger
}

func NewFeed(user Recipient, log logger.Logger) *Feed {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Feed{
		user: user,
		log:  log.WithFields(map[string]interface{}{"component": "notifications"}),
	}
}

// SetUser switches the current user. Existing entries are kept; the
// per-user view filters them.
func (f *Feed) SetUser(user Recipient) {
	f.user = user
}

// Apply recomputes notifications against the given project state and
// prepends anything new (most recent first). Existing entries and their
// read state are never altered. Returns the number of new entries.
func (f *Feed) Apply(projects []models.Project, now time.Time) int {
	fresh := Recompute(projects, f.notifications, f.user, now)
	if len(fresh) == 0 {
		return 0
	}
	for _, n := range fresh {
		metrics.NotificationsDerived.WithLabelValues(string(n.Type)).Inc()
	}
	f.notifications = append(fresh, f.notifications...)
	f.log.Debug("derived notifications", map[string]interface{}{"count": len(fresh)})
	return len(fresh)
}

// Add inserts a manual notification at the head of the feed.
func (f *Feed) Add(n models.Notification) models.Notification {
	if n.ID == "" {
		n.ID = "notif-" + uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	f.notifications = append([]models.Notification{n}, f.notifications...)
	return n
}

// ForUser returns the current user's notifications, most recent first.
func (f *Feed) ForUser() []models.Notification {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == f.user.ID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount counts the current user's unread notifications.
func (f *Feed) UnreadCount() int {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == f.user.ID && !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification read. Idempotent; unknown ids are a no-op.
func (f *Feed) MarkAsRead(id string) {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
			return
		}
	}
}

// MarkAllAsRead marks every notification of the current user read.
func (f *Feed) MarkAllAsRead() {
	for i := range f.notifications {
		if f.notifications[i].UserID == f.user.ID {
			f.notifications[i].Read = true
		}
	}
}

// Delete removes one notification. Unknown ids are a no-op.
func (f *Feed) Delete(id string) {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return
		}
	}
}

// ClearAll removes every notification of the current user.
func (f *Feed) ClearAll() {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.UserID != f.user.ID {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
}
