package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

type errorBody struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *e.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input", Field: verr.Field, Reason: verr.Reason})
	case errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid coordinates"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, e.ErrUnauthorized):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	default:
		h.log(r).Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// parsePageRequest reads page, size and sort=startTime,{asc|desc}.
// Out-of-range values are normalized by the services.
func parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()
	req := domain.DefaultPageRequest()

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, e.NewValidationError("page", "must be an integer")
		}
		req.Page = n
	}
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, e.NewValidationError("size", "must be an integer")
		}
		req.Size = n
	}
	if raw := q.Get("sort"); raw != "" {
		field, dir, found := strings.Cut(raw, ",")
		if field != "startTime" {
			return req, e.NewValidationError("sort", "only startTime is sortable")
		}
		if found {
			switch domain.SortDirection(strings.ToLower(dir)) {
			case domain.SortAsc:
				req.SortDir = domain.SortAsc
			case domain.SortDesc:
				req.SortDir = domain.SortDesc
			default:
				return req, e.NewValidationError("sort", "direction must be asc or desc")
			}
		}
	}
	return req, nil
}
