package repository

import (
	"fmt"
	"sync"

	"train-booking/internal/data/entity"

	"go.uber.org/zap"
)

type TicketRepository interface {
	Save(ticket entity.Ticket) error
	Update(ticket entity.Ticket) error
	FindByEmail(email string) (entity.Ticket, error)
	DeleteByEmail(email string)
	FindAll() map[string]entity.Ticket
}

// ticketRepository is the ticket ledger: one active ticket per user email.
// Save rejects duplicates so at-most-one-ticket-per-user cannot be broken
// from below; seat changes go through Update, which requires the entry to
// already exist.
type ticketRepository struct {
	mu      sync.RWMutex
	tickets map[string]entity.Ticket
	log     *zap.Logger
}

func NewTicketRepository(log *zap.Logger) TicketRepository {
	return &ticketRepository{
		tickets: make(map[string]entity.Ticket),
		log:     log,
	}
}

func (tr *ticketRepository) Save(ticket entity.Ticket) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	email := ticket.User.Email
	if _, ok := tr.tickets[email]; ok {
		return fmt.Errorf("save ticket for %s: %w", email, ErrTicketAlreadyExists)
	}
	tr.tickets[email] = ticket

	tr.log.Info("Ticket saved",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("email", email),
		zap.String("seat", ticket.Seat.Number),
	)
	return nil
}

func (tr *ticketRepository) Update(ticket entity.Ticket) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	email := ticket.User.Email
	if _, ok := tr.tickets[email]; !ok {
		return fmt.Errorf("update ticket for %s: %w", email, ErrTicketNotFound)
	}
	tr.tickets[email] = ticket

	tr.log.Info("Ticket updated",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("email", email),
		zap.String("seat", ticket.Seat.Number),
	)
	return nil
}

func (tr *ticketRepository) FindByEmail(email string) (entity.Ticket, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	ticket, ok := tr.tickets[email]
	if !ok {
		return entity.Ticket{}, fmt.Errorf("find ticket for %s: %w", email, ErrTicketNotFound)
	}
	return ticket, nil
}

func (tr *ticketRepository) DeleteByEmail(email string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	delete(tr.tickets, email)
}

// FindAll returns a copy-on-read snapshot for section-scoped queries.
func (tr *ticketRepository) FindAll() map[string]entity.Ticket {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	tickets := make(map[string]entity.Ticket, len(tr.tickets))
	for email, ticket := range tr.tickets {
		tickets[email] = ticket
	}
	return tickets
}
