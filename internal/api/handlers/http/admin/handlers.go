package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CrisisAdmin interface {
	Create(ctx context.Context, actor domain.Actor, req domain.CreateCrisisEventRequest) (*domain.CrisisEvent, error)
	Update(ctx context.Context, actor domain.Actor, id int64, req domain.UpdateCrisisEventRequest) (*domain.CrisisEvent, error)
	Deactivate(ctx context.Context, actor domain.Actor, id int64) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NotificationStats, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  CrisisAdmin
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, admin CrisisAdmin, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) CreateCrisisEvent(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CreateCrisisEvent", slog.String("remote", r.RemoteAddr))

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}

	var req domain.CreateCrisisEventRequest
	if err := decodeJSON(r, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	event, err := h.Admin.Create(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("crisis event created", slog.Int64("id", event.ID), slog.Int64("actor", actor.UserID))
	h.writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) UpdateCrisisEvent(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("UpdateCrisisEvent", slog.String("remote", r.RemoteAddr))

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}

	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateCrisisEventRequest
	if err := decodeJSON(r, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	event, err := h.Admin.Update(r.Context(), actor, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, event)
}

func (h *Handler) DeactivateCrisisEvent(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DeactivateCrisisEvent", slog.String("remote", r.RemoteAddr))

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}

	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	if err := h.Admin.Deactivate(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("crisis event deactivated", slog.Int64("id", id), slog.Int64("actor", actor.UserID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotificationStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("NotificationStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input", Field: "minutes", Reason: "must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
