package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/metrics"
)

// QueueDispatcher records each notification once in the notification log
// and hands it to the delivery queue.
type QueueDispatcher struct {
	queue  NotificationQueue
	log    NotificationLog
	logger *slog.Logger
	now    func() time.Time
}

func NewQueueDispatcher(queue NotificationQueue, log NotificationLog, logger *slog.Logger) *QueueDispatcher {
	return &QueueDispatcher{
		queue:  queue,
		log:    log,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (d *QueueDispatcher) Notify(ctx context.Context, resident domain.AffectedResident, event *domain.CrisisEvent, summary domain.ChangeSummary) error {
	msg := BuildMessage(event, summary, resident.Reason)
	if msg == "" {
		return nil
	}

	payload := domain.NotificationPayload{
		ID:        uuid.New(),
		DedupeKey: DedupeKey(event, summary.Kind, resident.Resident.UserID),
		UserID:    resident.Resident.UserID,
		EventID:   event.ID,
		Kind:      summary.Kind,
		Severity:  event.Severity,
		Reason:    resident.Reason,
		Message:   msg,
		CreatedAt: d.now(),
	}

	fresh, err := d.log.MarkSent(ctx, payload)
	if err != nil {
		return err
	}
	if !fresh {
		metrics.Notifications.WithLabelValues("duplicate").Inc()
		d.logger.Debug("notification already sent", slog.String("dedupe_key", payload.DedupeKey))
		return nil
	}

	if err := d.queue.Enqueue(ctx, payload); err != nil {
		if relErr := d.log.Release(ctx, payload.DedupeKey); relErr != nil {
			d.logger.Error("release dedupe key failed",
				slog.String("dedupe_key", payload.DedupeKey),
				slog.Any("error", relErr),
			)
		}
		return err
	}
	metrics.Notifications.WithLabelValues("queued").Inc()
	return nil
}

// DedupeKey identifies one notification for one mutation of an event.
func DedupeKey(event *domain.CrisisEvent, kind domain.NotificationKind, userID int64) string {
	return fmt.Sprintf("%d:%s:%d:%d", event.ID, kind, event.UpdatedAt.UnixNano(), userID)
}
