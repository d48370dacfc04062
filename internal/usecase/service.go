package usecase

import (
	"train-booking/internal/data/repository"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Seat   SeatAllocationService
	User   UserService
	Ticket TicketService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	seat := NewSeatAllocationService(config.Train.SeatsPerSection, log)
	user := NewUserService(repo.User, log)
	ticket := NewTicketService(repo.Ticket, seat, user, config, log)

	return &Service{
		Seat:   seat,
		User:   user,
		Ticket: ticket,
	}
}
