package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkroell/splitpot/internal/auth"
	mw "github.com/dkroell/splitpot/pkg/middleware"
	"github.com/dkroell/splitpot/pkg/response"
)

// recentCookie tracks the IDs of recently visited events, most recent first
const (
	recentCookie    = "recent_events"
	recentCookieMax = 5
	recentCookieTTL = 30 * 24 * time.Hour
)

// Handler handles HTTP requests for event operations
type Handler struct {
	service *Service
	tokens  *auth.TokenManager
}

// NewHandler creates a new event handler
func NewHandler(service *Service, tokens *auth.TokenManager) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// Routes returns the router for event endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/recent", h.ListRecent)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth(h.tokens))
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// Create handles POST /events
// @Summary      Create a new event
// @Description  Create an event that scopes a shared set of participants, expenses and payments
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body CreateEventRequest true "Event creation request"
// @Success      201 {object} response.APIResponse{data=EventResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /events [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Event name is required")
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create event")
		return
	}

	response.JSON(w, http.StatusCreated, event.ToResponse())
}

// GetByID handles GET /events/{id}
// @Summary      Get event by ID
// @Description  Get an event and remember it in the recently-visited cookie
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get event")
		return
	}

	h.rememberVisit(w, r, id)
	response.JSON(w, http.StatusOK, event.ToResponse())
}

// ListRecent handles GET /events/recent
// @Summary      List recently visited events
// @Description  Resolve the recently-visited cookie to full events, most recent first
// @Tags         events
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]EventResponse}
// @Router       /events/recent [get]
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListByIDs(r.Context(), recentVisits(r))
	if err != nil {
		response.InternalError(w, "Failed to list recent events")
		return
	}

	eventResponses := make([]*EventResponse, len(events))
	for i, e := range events {
		eventResponses[i] = e.ToResponse()
	}
	response.JSON(w, http.StatusOK, eventResponses)
}

// Update handles PUT /events/{id}
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body UpdateEventRequest true "Event update request"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	event, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidCurrency):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update event")
		}
		return
	}

	response.JSON(w, http.StatusOK, event.ToResponse())
}

// Delete handles DELETE /events/{id}
// @Summary      Delete an event
// @Description  Delete an event and all records under it (admin only)
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	identity, ok := mw.GetIdentity(r.Context())
	if !ok || identity.EventID != id || !identity.IsAdmin {
		response.Forbidden(w, "Only an event admin can delete the event")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete event")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// rememberVisit prepends the event to the recently-visited cookie,
// deduplicating and keeping at most recentCookieMax entries
func (h *Handler) rememberVisit(w http.ResponseWriter, r *http.Request, id int64) {
	ids := []int64{id}
	for _, visited := range recentVisits(r) {
		if visited != id && len(ids) < recentCookieMax {
			ids = append(ids, visited)
		}
	}

	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.FormatInt(v, 10)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     recentCookie,
		Value:    strings.Join(parts, "."),
		Path:     "/",
		Expires:  time.Now().Add(recentCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// recentVisits parses the recently-visited cookie, skipping malformed entries
func recentVisits(r *http.Request) []int64 {
	cookie, err := r.Cookie(recentCookie)
	if err != nil {
		return nil
	}

	var ids []int64
	for _, part := range strings.Split(cookie.Value, ".") {
		if id, err := strconv.ParseInt(part, 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
