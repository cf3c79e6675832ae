package service

import (
	"context"
	"log/slog"
	"time"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/metrics"
)

const dispatchTimeout = 30 * time.Second

// FanOutHandler turns a committed mutation into resident notifications.
type FanOutHandler struct {
	residents  ResidentDirectory
	impact     ImpactEvaluator
	dispatcher NotificationDispatcher
	logger     *slog.Logger
}

func NewFanOutHandler(residents ResidentDirectory, impact ImpactEvaluator, dispatcher NotificationDispatcher, logger *slog.Logger) *FanOutHandler {
	return &FanOutHandler{
		residents:  residents,
		impact:     impact,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle scans residents under ctx and dispatches only after the scan
// completed, so a cancelled job sends nothing.
func (h *FanOutHandler) Handle(ctx context.Context, job domain.FanOutJob) {
	started := time.Now()
	defer func() { metrics.FanOutDuration.Observe(time.Since(started).Seconds()) }()

	log := h.logger.With(
		slog.Int64("event_id", job.Event.ID),
		slog.String("kind", string(job.Summary.Kind)),
	)

	if !HasVisibleChanges(job.Summary) {
		metrics.FanOutJobs.WithLabelValues("skipped").Inc()
		log.Info("no significant changes, notifications skipped")
		return
	}

	residents, err := h.residents.ListLocated(ctx)
	if err != nil {
		metrics.FanOutJobs.WithLabelValues("failed").Inc()
		log.Error("load residents failed", slog.Any("error", err))
		return
	}

	affected, err := h.impact.AffectedUsers(ctx, job.Event, residents)
	if err != nil {
		metrics.FanOutJobs.WithLabelValues("cancelled").Inc()
		log.Warn("impact scan stopped", slog.Any("error", err))
		return
	}
	log.Info("impact scan done", slog.Int("residents", len(residents)), slog.Int("affected", len(affected)))

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	sent := 0
	for _, a := range affected {
		if err := h.dispatcher.Notify(dctx, a, job.Event, job.Summary); err != nil {
			metrics.Notifications.WithLabelValues("failed").Inc()
			log.Error("notify failed", slog.Int64("user_id", a.Resident.UserID), slog.Any("error", err))
			continue
		}
		sent++
	}
	metrics.FanOutJobs.WithLabelValues("done").Inc()
	log.Info("notifications dispatched", slog.Int("sent", sent), slog.Int("affected", len(affected)))
}
