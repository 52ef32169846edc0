package activity

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkroell/splitpot/pkg/response"
)

// Handler handles HTTP requests for the activity feed
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/event/{eventId}", h.ListByEvent)

	return r
}

// ListByEvent handles GET /activities/event/{eventId}
// @Summary      List an event's activity feed
// @Description  Get a paginated feed of what happened in the event, newest first
// @Tags         activities
// @Produce      json
// @Param        eventId path int true "Event ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Activity}
// @Router       /activities/event/{eventId} [get]
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	activities, total, err := h.service.ListByEventID(r.Context(), eventID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list activities")
		return
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
	response.JSONWithMeta(w, http.StatusOK, activities, meta)
}
