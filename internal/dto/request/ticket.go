package request

type PurchaseTicketRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
	Section   string `json:"section" validate:"required"`
}

type ModifySeatRequest struct {
	SeatNumber string `json:"seat_number" validate:"required"`
	Section    string `json:"section" validate:"required"`
}
