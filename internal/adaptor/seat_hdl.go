package adaptor

import (
	"net/http"

	"train-booking/internal/data/entity"
	"train-booking/internal/dto/response"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	seats   usecase.SeatAllocationService
	tickets usecase.TicketService
	log     *zap.Logger
}

func NewSeatHandler(seats usecase.SeatAllocationService, tickets usecase.TicketService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		seats:   seats,
		tickets: tickets,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// AvailableSeats handles GET /api/seats/available/{section}
func (h *SeatHandler) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	section, ok := entity.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid section", nil)
		return
	}

	seats := h.seats.AvailableSeats(r.Context(), section)
	utils.ResponseSuccess(w, "success", response.SeatsToResponse(seats))
}

// AllocatedBySection handles GET /api/seats/allocated/{section}
func (h *SeatHandler) AllocatedBySection(w http.ResponseWriter, r *http.Request) {
	section, ok := entity.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid section", nil)
		return
	}

	usersAndSeats := h.tickets.UsersAndSeatsBySection(r.Context(), section)
	utils.ResponseSuccess(w, "success", usersAndSeats)
}
