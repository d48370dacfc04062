package adaptor

import (
	"train-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Ticket *TicketHandler
	Seat   *SeatHandler
	User   *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Ticket: NewTicketHandler(service.Ticket, log),
		Seat:   NewSeatHandler(service.Seat, service.Ticket, log),
		User:   NewUserHandler(service.User, log),
	}
}
