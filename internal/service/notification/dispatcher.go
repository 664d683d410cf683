package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/notification"
)

// LogDispatcher records reminders to the structured log. It stands in
// until a push or chat channel is wired up; the dedup map keeps a
// 15-minute sweep from re-sending the same reminder every cycle.
type LogDispatcher struct {
	mu   sync.Mutex
	sent map[string]time.Time
}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{sent: make(map[string]time.Time)}
}

func (d *LogDispatcher) Notify(ctx context.Context, userID string, reminder notification.ReminderType, scheduledAt time.Time) error {
	key := userID + "|" + string(reminder) + "|" + scheduledAt.Format(time.RFC3339)

	d.mu.Lock()
	if _, dup := d.sent[key]; dup {
		d.mu.Unlock()
		return nil
	}
	d.sent[key] = time.Now()
	d.evictOld()
	d.mu.Unlock()

	slog.Info("Attendance reminder",
		"user_id", userID,
		"reminder", string(reminder),
		"scheduled_at", scheduledAt.Format(time.RFC3339))
	return nil
}

// evictOld drops dedup entries older than a day. Called with the lock held.
func (d *LogDispatcher) evictOld() {
	cutoff := time.Now().Add(-24 * time.Hour)
	for k, at := range d.sent {
		if at.Before(cutoff) {
			delete(d.sent, k)
		}
	}
}
