package participant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkroell/splitpot/internal/auth"
	mw "github.com/dkroell/splitpot/pkg/middleware"
	"github.com/dkroell/splitpot/pkg/response"
)

// Handler handles HTTP requests for participant operations
type Handler struct {
	service *Service
	tokens  *auth.TokenManager
}

// NewHandler creates a new participant handler
func NewHandler(service *Service, tokens *auth.TokenManager) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// Routes returns the router for participant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/auth", h.Authenticate)

	// Event-based listing
	r.Get("/event/{eventId}", h.ListByEvent)

	// Admin operations
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth(h.tokens))
		r.Post("/{id}/promote", h.Promote)
		r.Post("/{id}/demote", h.Demote)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// Create handles POST /participants
// @Summary      Add a participant to an event
// @Description  The first participant of an event automatically becomes its admin
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body CreateParticipantRequest true "Participant creation request"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.EventID == 0 || req.Name == "" {
		response.BadRequest(w, "event_id and name are required")
		return
	}

	participant, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create participant")
		return
	}

	response.JSON(w, http.StatusCreated, participant.ToResponse())
}

// GetByID handles GET /participants/{id}
// @Summary      Get participant by ID
// @Tags         participants
// @Produce      json
// @Param        id path int true "Participant ID"
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /participants/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	participant, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get participant")
		return
	}

	response.JSON(w, http.StatusOK, participant.ToResponse())
}

// ListByEvent handles GET /participants/event/{eventId}
// @Summary      List participants of an event
// @Tags         participants
// @Produce      json
// @Param        eventId path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Router       /participants/event/{eventId} [get]
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	participants, err := h.service.ListByEventID(r.Context(), eventID)
	if err != nil {
		response.InternalError(w, "Failed to list participants")
		return
	}

	participantResponses := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		participantResponses[i] = p.ToResponse()
	}
	response.JSON(w, http.StatusOK, participantResponses)
}

// Update handles PUT /participants/{id}
// @Summary      Update a participant
// @Description  Change the display name and/or PIN
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id path int true "Participant ID"
// @Param        request body UpdateParticipantRequest true "Participant update request"
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /participants/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	var req UpdateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	participant, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrParticipantNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNameTaken):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to update participant")
		}
		return
	}

	response.JSON(w, http.StatusOK, participant.ToResponse())
}

// Authenticate handles POST /participants/{id}/auth
// @Summary      Authenticate with a PIN
// @Description  Verify the participant's PIN and issue a signed token
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id path int true "Participant ID"
// @Param        request body AuthRequest true "PIN"
// @Success      200 {object} response.APIResponse{data=AuthResponse}
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /participants/{id}/auth [post]
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	token, participant, err := h.service.Authenticate(r.Context(), id, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, ErrParticipantNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNoPIN):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrWrongPIN):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalError(w, "Failed to authenticate")
		}
		return
	}

	response.JSON(w, http.StatusOK, &AuthResponse{
		Token:       token,
		Participant: participant.ToResponse(),
	})
}

// Promote handles POST /participants/{id}/promote
// @Summary      Grant admin rights
// @Tags         participants
// @Produce      json
// @Param        id path int true "Participant ID"
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /participants/{id}/promote [post]
func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, true)
}

// Demote handles POST /participants/{id}/demote
// @Summary      Revoke admin rights
// @Tags         participants
// @Produce      json
// @Param        id path int true "Participant ID"
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /participants/{id}/demote [post]
func (h *Handler) Demote(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, false)
}

func (h *Handler) setAdmin(w http.ResponseWriter, r *http.Request, promote bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	target, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get participant")
		return
	}

	identity, ok := mw.GetIdentity(r.Context())
	if !ok || !identity.IsAdmin || identity.EventID != target.EventID {
		response.Forbidden(w, "Only an event admin can change admin rights")
		return
	}

	var participant *Participant
	if promote {
		participant, err = h.service.Promote(r.Context(), id)
	} else {
		participant, err = h.service.Demote(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, ErrLastAdmin) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to change admin rights")
		return
	}

	response.JSON(w, http.StatusOK, participant.ToResponse())
}

// Delete handles DELETE /participants/{id}
// @Summary      Remove a participant
// @Description  Fails while expenses or payments still reference the participant
// @Tags         participants
// @Produce      json
// @Param        id path int true "Participant ID"
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	target, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get participant")
		return
	}

	identity, ok := mw.GetIdentity(r.Context())
	if !ok || identity.EventID != target.EventID || (!identity.IsAdmin && identity.ParticipantID != id) {
		response.Forbidden(w, "Only the participant or an event admin can remove them")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrParticipantInUse) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete participant")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Participant removed"})
}
