package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(seatsPerSection int) (*usecase.Service, *repository.Repository) {
	log := zap.NewNop()
	repo := repository.NewRepository(log)
	config := &utils.Config{
		Train: utils.TrainConfig{
			SeatsPerSection: seatsPerSection,
			TicketPrice:     20.0,
		},
	}
	return usecase.NewService(repo, config, log), repo
}

func purchaseRequest(email, section string) *request.PurchaseTicketRequest {
	return &request.PurchaseTicketRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		From:      "London",
		To:        "Paris",
		Section:   section,
	}
}

func TestPurchase_Success(t *testing.T) {
	service, repo := newService(10)
	ctx := context.Background()

	ticket, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)
	require.NotNil(t, ticket)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "A1", ticket.Seat.SeatNumber)
	assert.Equal(t, "A", ticket.Seat.Section)
	assert.Equal(t, "London", ticket.From)
	assert.Equal(t, "Paris", ticket.To)
	assert.Equal(t, 20.0, ticket.PricePaid)
	assert.Equal(t, "alice@example.com", ticket.User.Email)

	// Purchase registers the unknown user.
	user, err := repo.User.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
}

func TestPurchase_KnownUserKeepsExistingNames(t *testing.T) {
	service, repo := newService(10)
	ctx := context.Background()

	existing := entity.User{FirstName: "Robert", LastName: "Jones", Email: "bob@example.com"}
	require.NoError(t, repo.User.Save(existing))

	req := purchaseRequest("bob@example.com", "A")
	req.FirstName = "Bobby"

	ticket, err := service.Ticket.Purchase(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Robert", ticket.User.FirstName)
}

func TestPurchase_DuplicateEmail(t *testing.T) {
	service, _ := newService(10)
	ctx := context.Background()

	_, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)

	_, err = service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "B"))
	assert.ErrorIs(t, err, repository.ErrTicketAlreadyExists)

	// The failed purchase must not have allocated a second seat.
	assert.Len(t, service.Seat.AvailableSeats(ctx, entity.SectionA), 9)
	assert.Len(t, service.Seat.AvailableSeats(ctx, entity.SectionB), 10)
}

func TestPurchase_SectionFullLeavesNoPartialState(t *testing.T) {
	service, repo := newService(1)
	ctx := context.Background()

	_, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)

	_, err = service.Ticket.Purchase(ctx, purchaseRequest("carol@example.com", "A"))
	assert.ErrorIs(t, err, usecase.ErrSeatUnavailable)

	// The failed purchase created neither a user nor a ticket.
	_, err = repo.User.FindByEmail("carol@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.Ticket.FindByEmail("carol@example.com")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestPurchase_InvalidSection(t *testing.T) {
	service, _ := newService(10)

	_, err := service.Ticket.Purchase(context.Background(), purchaseRequest("alice@example.com", "Z"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid section")
}

func TestCancel_RoundTripFreesSeat(t *testing.T) {
	service, _ := newService(10)
	ctx := context.Background()

	ticket, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)
	require.Equal(t, "A1", ticket.Seat.SeatNumber)

	require.NoError(t, service.Ticket.Cancel(ctx, "alice@example.com"))

	available := service.Seat.AvailableSeats(ctx, entity.SectionA)
	assert.Len(t, available, 10)
	assert.True(t, containsSeat(available, "A1"))

	_, err = service.Ticket.Get(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestCancel_NoTicket(t *testing.T) {
	service, _ := newService(10)

	err := service.Ticket.Cancel(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestModifySeat_Success(t *testing.T) {
	service, _ := newService(10)
	ctx := context.Background()

	ticket, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)
	require.Equal(t, "A1", ticket.Seat.SeatNumber)

	updated, err := service.Ticket.ModifySeat(ctx, "alice@example.com", &request.ModifySeatRequest{
		SeatNumber: "A5",
		Section:    "A",
	})
	require.NoError(t, err)

	// Same ticket, new seat.
	assert.Equal(t, ticket.ID, updated.ID)
	assert.Equal(t, "A5", updated.Seat.SeatNumber)

	available := service.Seat.AvailableSeats(ctx, entity.SectionA)
	assert.True(t, containsSeat(available, "A1"))
	assert.False(t, containsSeat(available, "A5"))

	got, err := service.Ticket.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A5", got.Seat.SeatNumber)
}

func TestModifySeat_TargetTaken(t *testing.T) {
	service, _ := newService(10)
	ctx := context.Background()

	_, err := service.Ticket.Purchase(ctx, purchaseRequest("alice@example.com", "A"))
	require.NoError(t, err)
	other, err := service.Ticket.Purchase(ctx, purchaseRequest("carol@example.com", "A"))
	require.NoError(t, err)
	require.Equal(t, "A2", other.Seat.SeatNumber)

	_, err = service.Ticket.ModifySeat(ctx, "alice@example.com", &request.ModifySeatRequest{
		SeatNumber: "A2",
		Section:    "A",
	})
	assert.ErrorIs(t, err, usecase.ErrSeatUnavailable)

	// Alice keeps her seat; nothing was released.
	got, err := service.Ticket.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A1", got.Seat.SeatNumber)
	assert.Len(t, service.Seat.AvailableSeats(ctx, entity.SectionA), 8)
}

func TestModifySeat_NoTicket(t *testing.T) {
	service, _ := newService(10)

	_, err := service.Ticket.ModifySeat(context.Background(), "nobody@example.com", &request.ModifySeatRequest{
		SeatNumber: "A5",
		Section:    "A",
	})
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestUsersAndSeatsBySection_NumericOrder(t *testing.T) {
	service, repo := newService(10)
	ctx := context.Background()

	// Seed the ledger with seats whose lexical and numeric orders differ.
	save := func(email, number string) {
		err := repo.Ticket.Save(entity.Ticket{
			ID:    uuid.New(),
			User:  entity.User{FirstName: "Test", LastName: "User", Email: email},
			Seat:  entity.Seat{Number: number, Section: entity.SectionA},
			From:  "London",
			To:    "Paris",
			Price: 20.0,
		})
		require.NoError(t, err)
	}
	save("ten@example.com", "A10")
	save("two@example.com", "A2")
	save("other@example.com", "B1")

	lines := service.Ticket.UsersAndSeatsBySection(ctx, entity.SectionA)
	require.Len(t, lines, 2)
	assert.Equal(t, "User: two@example.com, Seat: A2", lines[0])
	assert.Equal(t, "User: ten@example.com, Seat: A10", lines[1])
}

func TestSectionFillDrainRefill(t *testing.T) {
	service, _ := newService(10)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("rider%d@example.com", i)
		ticket, err := service.Ticket.Purchase(ctx, purchaseRequest(email, "B"))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("B%d", i), ticket.Seat.SeatNumber)
	}

	_, err := service.Ticket.Purchase(ctx, purchaseRequest("rider11@example.com", "B"))
	assert.ErrorIs(t, err, usecase.ErrSeatUnavailable)

	require.NoError(t, service.Ticket.Cancel(ctx, "rider4@example.com"))

	ticket, err := service.Ticket.Purchase(ctx, purchaseRequest("rider11@example.com", "B"))
	require.NoError(t, err)
	assert.Equal(t, "B4", ticket.Seat.SeatNumber)
}
