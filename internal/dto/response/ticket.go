package response

import (
	"train-booking/internal/data/entity"
)

type SeatResponse struct {
	SeatNumber string `json:"seat_number"`
	Section    string `json:"section"`
}

type UserResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type TicketResponse struct {
	ID        string       `json:"id"`
	User      UserResponse `json:"user"`
	Seat      SeatResponse `json:"seat"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	PricePaid float64      `json:"price_paid"`
}

// Helper converters

func SeatToResponse(seat entity.Seat) SeatResponse {
	return SeatResponse{
		SeatNumber: seat.Number,
		Section:    string(seat.Section),
	}
}

func SeatsToResponse(seats []entity.Seat) []SeatResponse {
	resp := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		resp[i] = SeatToResponse(seat)
	}
	return resp
}

func UserToResponse(user entity.User) UserResponse {
	return UserResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func TicketToResponse(ticket entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID.String(),
		User:      UserToResponse(ticket.User),
		Seat:      SeatToResponse(ticket.Seat),
		From:      ticket.From,
		To:        ticket.To,
		PricePaid: ticket.Price,
	}
}
