package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	Purchase(ctx context.Context, req *request.PurchaseTicketRequest) (*response.TicketResponse, error)
	Get(ctx context.Context, email string) (*response.TicketResponse, error)
	Cancel(ctx context.Context, email string) error
	ModifySeat(ctx context.Context, email string, req *request.ModifySeatRequest) (*response.TicketResponse, error)
	UsersAndSeatsBySection(ctx context.Context, section entity.Section) []string
}

// ticketService orchestrates the user store, seat pool and ticket ledger.
// Each structure guards itself; mu additionally serializes the multi-
// structure operations so they appear atomic to concurrent callers.
type ticketService struct {
	mu      sync.Mutex
	tickets repository.TicketRepository
	seats   SeatAllocationService
	users   UserService
	price   float64
	log     *zap.Logger
}

func NewTicketService(
	tickets repository.TicketRepository,
	seats SeatAllocationService,
	users UserService,
	config *utils.Config,
	log *zap.Logger,
) TicketService {
	return &ticketService{
		tickets: tickets,
		seats:   seats,
		users:   users,
		price:   config.Train.TicketPrice,
		log:     log.With(zap.String("service", "ticket")),
	}
}

// Purchase books the lowest-numbered free seat in the requested section and
// issues a ticket. All-or-nothing: a failure at any step leaves no user,
// seat or ledger change behind. The seat is allocated before an unknown
// user is created, so a full section cannot leak a half-registered user.
func (s *ticketService) Purchase(ctx context.Context, req *request.PurchaseTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Purchase validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	section, ok := entity.ParseSection(req.Section)
	if !ok {
		return nil, fmt.Errorf("invalid section %q", req.Section)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tickets.FindByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("a ticket is already booked for %s: %w", req.Email, repository.ErrTicketAlreadyExists)
	}

	seat, err := s.seats.Allocate(ctx, section)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = entity.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		}
		if err := s.users.Add(ctx, user); err != nil {
			s.seats.Release(ctx, seat)
			return nil, fmt.Errorf("register user %s: %w", req.Email, err)
		}
	} else if err != nil {
		s.seats.Release(ctx, seat)
		return nil, err
	}

	ticket := entity.Ticket{
		ID:    uuid.New(),
		User:  user,
		Seat:  seat,
		From:  req.From,
		To:    req.To,
		Price: s.price,
	}

	if err := s.tickets.Save(ticket); err != nil {
		s.seats.Release(ctx, seat)
		return nil, err
	}

	s.log.Info("Ticket purchased",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("email", req.Email),
		zap.String("seat", seat.Number),
		zap.Float64("price", s.price),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) Get(ctx context.Context, email string) (*response.TicketResponse, error) {
	ticket, err := s.tickets.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// Cancel releases the seat back to its pool before removing the ledger
// entry, so a failure between the two can never lose a seat.
func (s *ticketService) Cancel(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.tickets.FindByEmail(email)
	if err != nil {
		return err
	}

	s.seats.Release(ctx, ticket.Seat)
	s.tickets.DeleteByEmail(email)

	s.log.Info("Ticket cancelled",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("email", email),
		zap.String("seat", ticket.Seat.Number),
	)
	return nil
}

func (s *ticketService) ModifySeat(ctx context.Context, email string, req *request.ModifySeatRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Modify seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	section, ok := entity.ParseSection(req.Section)
	if !ok {
		return nil, fmt.Errorf("invalid section %q", req.Section)
	}
	requested := entity.Seat{Number: req.SeatNumber, Section: section}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.tickets.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	seat, err := s.seats.Reallocate(ctx, ticket.Seat, requested)
	if err != nil {
		return nil, err
	}

	updated := ticket.WithSeat(seat)
	if err := s.tickets.Update(updated); err != nil {
		// Undo the swap; the ledger entry vanished mid-operation.
		s.seats.Reallocate(ctx, seat, ticket.Seat)
		return nil, err
	}

	s.log.Info("Seat modified",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("email", email),
		zap.String("from", ticket.Seat.Number),
		zap.String("to", seat.Number),
	)

	resp := response.TicketToResponse(updated)
	return &resp, nil
}

// UsersAndSeatsBySection renders every ticket in a section, ascending by
// seat number ("A2" before "A10").
func (s *ticketService) UsersAndSeatsBySection(ctx context.Context, section entity.Section) []string {
	var tickets []entity.Ticket
	for _, ticket := range s.tickets.FindAll() {
		if ticket.Seat.Section == section {
			tickets = append(tickets, ticket)
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].Seat.Index() < tickets[j].Seat.Index()
	})

	lines := make([]string, len(tickets))
	for i, ticket := range tickets {
		lines[i] = fmt.Sprintf("User: %s, Seat: %s", ticket.User.Email, ticket.Seat.Number)
	}
	return lines
}
