package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

// NotificationQueue publishes payloads on a subject and consumes them through
// a queue group, so each payload reaches one sender.
type NotificationQueue struct {
	nc      *nats.Conn
	subject string
	sub     *nats.Subscription
}

func NewNotificationQueue(nc *nats.Conn, subject, queue string) (*NotificationQueue, error) {
	sub, err := nc.QueueSubscribeSync(subject, queue)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	return &NotificationQueue{nc: nc, subject: subject, sub: sub}, nil
}

func (q *NotificationQueue) Enqueue(_ context.Context, payload domain.NotificationPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.nc.Publish(q.subject, b)
}

// Next waits up to timeout and returns e.ErrQueueEmpty when nothing arrived.
func (q *NotificationQueue) Next(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error) {
	var p domain.NotificationPayload

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := q.sub.NextMsgWithContext(waitCtx)
	if err != nil {
		if ctx.Err() == nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, nats.ErrTimeout)) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if err := json.Unmarshal(msg.Data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func (q *NotificationQueue) Close() error {
	return q.sub.Unsubscribe()
}
