package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// Purchase handles POST /api/tickets/purchase
func (h *TicketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.Purchase(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "purchase ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// GetReceipt handles GET /api/tickets/{email}/receipt
func (h *TicketHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	ticket, err := h.service.Get(r.Context(), email)
	if err != nil {
		h.handleServiceError(w, err, "get receipt")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// Cancel handles DELETE /api/tickets/{email}/remove
func (h *TicketHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), email); err != nil {
		h.handleServiceError(w, err, "cancel ticket")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ModifySeat handles PUT /api/tickets/{email}/modify-seat
func (h *TicketHandler) ModifySeat(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	var req request.ModifySeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.ModifySeat(r.Context(), email, &req)
	if err != nil {
		h.handleServiceError(w, err, "modify seat")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// handleServiceError maps service errors onto HTTP responses.
func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrTicketNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrSeatUnavailable):
		h.log.Warn(operation+" failed - seat unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, repository.ErrTicketAlreadyExists),
		errors.Is(err, repository.ErrUserAlreadyExists):
		h.log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
