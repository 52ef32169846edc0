package balance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkroell/splitpot/internal/ledger"
	"github.com/dkroell/splitpot/pkg/response"
)

// Handler handles HTTP requests for balance and settlement reads
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/event/{eventId}", h.GetBalances)
	r.Get("/event/{eventId}/settlements", h.GetSettlements)

	return r
}

// GetBalances handles GET /balances/event/{eventId}
// @Summary      Get event balances
// @Description  Net position of every participant after all expenses and payments
// @Tags         balances
// @Produce      json
// @Param        eventId path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Failure      422 {object} response.APIResponse
// @Router       /balances/event/{eventId} [get]
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	balances, err := h.service.GetBalances(r.Context(), eventID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// GetSettlements handles GET /balances/event/{eventId}/settlements
// @Summary      Get event settlements
// @Description  Recorded payments followed by the suggested transfers that would settle the rest
// @Tags         balances
// @Produce      json
// @Param        eventId path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Failure      422 {object} response.APIResponse
// @Router       /balances/event/{eventId}/settlements [get]
func (h *Handler) GetSettlements(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	settlements, err := h.service.GetSettlements(r.Context(), eventID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, settlements)
}

// respondLedgerError maps engine errors onto HTTP statuses. Engine errors
// on a read mean the stored data itself is bad, so they surface as 422
// rather than 400.
func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidArgument),
		errors.Is(err, ledger.ErrUnknownParticipant),
		errors.Is(err, ledger.ErrInconsistent):
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalError(w, "Failed to compute balances")
	}
}
