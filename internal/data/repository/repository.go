package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Ticket TicketRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(log),
		Ticket: NewTicketRepository(log),
	}
}
