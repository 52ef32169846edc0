package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkroell/splitpot/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	// Event-based listing
	r.Get("/event/{eventId}", h.ListByEvent)

	return r
}

// Create handles POST /payments
// @Summary      Record a payment
// @Description  Record money that actually moved from one participant to another
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentRequest true "Payment creation request"
// @Success      201 {object} response.APIResponse{data=PaymentResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	payment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to record payment")
		return
	}

	response.JSON(w, http.StatusCreated, payment.ToResponse())
}

// GetByID handles GET /payments/{id}
// @Summary      Get payment by ID
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	payment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get payment")
		return
	}

	response.JSON(w, http.StatusOK, payment.ToResponse())
}

// ListByEvent handles GET /payments/event/{eventId}
// @Summary      List payments of an event
// @Tags         payments
// @Produce      json
// @Param        eventId path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=[]PaymentResponse}
// @Router       /payments/event/{eventId} [get]
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	payments, err := h.service.ListByEventID(r.Context(), eventID)
	if err != nil {
		response.InternalError(w, "Failed to list payments")
		return
	}

	paymentResponses := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = p.ToResponse()
	}
	response.JSON(w, http.StatusOK, paymentResponses)
}

// Update handles PUT /payments/{id}
// @Summary      Correct a recorded payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path int true "Payment ID"
// @Param        request body UpdatePaymentRequest true "Payment update request"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	payment, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case isValidationError(err):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update payment")
		}
		return
	}

	response.JSON(w, http.StatusOK, payment.ToResponse())
}

// Delete handles DELETE /payments/{id}
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete payment")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Payment deleted"})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSameParticipant) ||
		errors.Is(err, ErrParticipantNotInEvent)
}
