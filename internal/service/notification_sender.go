package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"crisisAlert/internal/config"
	"crisisAlert/internal/domain"
	"crisisAlert/internal/metrics"
	"crisisAlert/pkg/e"
)

const (
	senderPollTimeout = 5 * time.Second
	senderMaxRetries  = 3
)

// NotificationSender drains the notification queue and delivers each payload
// to the configured webhook. Without a webhook URL payloads are only logged.
type NotificationSender struct {
	logger  *slog.Logger
	cfg     config.NotificationsConfig
	source  NotificationSource
	http    *http.Client
	backoff func(attempt int) time.Duration
}

func NewNotificationSender(logger *slog.Logger, cfg config.NotificationsConfig, source NotificationSource) *NotificationSender {
	return &NotificationSender{
		logger:  logger,
		cfg:     cfg,
		source:  source,
		http:    &http.Client{Timeout: 5 * time.Second},
		backoff: func(attempt int) time.Duration { return time.Duration(attempt) * time.Second },
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notification sender started", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.source.Next(ctx, senderPollTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("notification queue read failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.Deliver(ctx, payload)
	}
}

// Deliver posts p to the webhook, retrying with linear backoff.
func (s *NotificationSender) Deliver(ctx context.Context, p domain.NotificationPayload) bool {
	if s.cfg.WebhookURL == "" {
		s.logger.Info("notification delivered",
			slog.Int64("user_id", p.UserID),
			slog.Int64("event_id", p.EventID),
			slog.String("message", p.Message),
		)
		metrics.WebhookDeliveries.WithLabelValues("logged").Inc()
		return true
	}

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal notification payload failed", slog.Any("error", err))
		return false
	}

	for attempt := 1; attempt <= senderMaxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.Any("error", err))
			return false
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", p.DedupeKey)

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			metrics.WebhookDeliveries.WithLabelValues("ok").Inc()
			return true
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status
			_ = resp.Body.Close()
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.WebhookURL),
			slog.String("reason", reason),
		)

		if attempt < senderMaxRetries {
			sleep(ctx, s.backoff(attempt))
		}
	}
	metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
	return false
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
