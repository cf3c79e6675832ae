package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"crisisAlert/internal/domain"
	"crisisAlert/internal/middleware"
	"crisisAlert/pkg/e"
	"crisisAlert/pkg/geo"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CrisisReader interface {
	Get(ctx context.Context, id int64) (*domain.CrisisEvent, error)
	ListActive(ctx context.Context, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error)
	ActivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error)
	InactivePreviews(ctx context.Context, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error)
	Changes(ctx context.Context, id int64, page domain.PageRequest) (domain.Page[domain.CrisisEventChange], error)
	SearchByName(ctx context.Context, req domain.SearchCrisisEventsRequest) (domain.Page[domain.CrisisEventPreview], error)
	NearestActive(ctx context.Context, p geo.Point) (*domain.CrisisEvent, error)
}

// AffectedReader serves the events affecting the authenticated user.
type AffectedReader interface {
	AffectedEvents(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[*domain.CrisisEvent], error)
	AffectedPreviews(ctx context.Context, userID int64, page domain.PageRequest) (domain.Page[domain.CrisisEventPreview], error)
}

type Handler struct {
	logger   *slog.Logger
	Crisis   CrisisReader
	Affected AffectedReader
}

func NewHandler(logger *slog.Logger, crisis CrisisReader, affected AffectedReader) *Handler {
	return &Handler{
		logger:   logger,
		Crisis:   crisis,
		Affected: affected,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) GetCrisisEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.Crisis.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, event)
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Crisis.ListActive(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("active events listed", slog.Int("count", len(res.Items)), slog.Int64("total", res.TotalItems))
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ActivePreviews(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Crisis.ActivePreviews(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) InactivePreviews(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Crisis.InactivePreviews(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Changes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Crisis.Changes(r.Context(), id, page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	active := true
	if raw := q.Get("active"); raw != "" {
		active, err = strconv.ParseBool(raw)
		if err != nil {
			h.handleError(w, r, e.NewValidationError("active", "must be a boolean"))
			return
		}
	}

	res, err := h.Crisis.SearchByName(r.Context(), domain.SearchCrisisEventsRequest{
		Query:  q.Get("q"),
		Active: active,
		Page:   page,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("search done", slog.String("q", q.Get("q")), slog.Bool("active", active), slog.Int64("total", res.TotalItems))
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		h.handleError(w, r, e.NewValidationError("lat", "must be a number"))
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		h.handleError(w, r, e.NewValidationError("lng", "must be a number"))
		return
	}

	event, err := h.Crisis.NearestActive(r.Context(), geo.Point{Lat: lat, Lng: lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, event)
}

func (h *Handler) AffectedEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.handleError(w, r, e.ErrUnauthorized)
		return
	}
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Affected.AffectedEvents(r.Context(), actor.UserID, page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) AffectedPreviews(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.handleError(w, r, e.ErrUnauthorized)
		return
	}
	page, err := parsePageRequest(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Affected.AffectedPreviews(r.Context(), actor.UserID, page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}
