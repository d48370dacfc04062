package entity

import "github.com/google/uuid"

// Ticket owns exactly one user and one seat. A user holds at most one
// active ticket at a time, keyed by email in the ledger.
type Ticket struct {
	ID    uuid.UUID
	User  User
	Seat  Seat
	From  string
	To    string
	Price float64
}

// WithSeat returns a copy of the ticket on a different seat. The ID and
// everything else carry over; tickets are replaced, never mutated.
func (t Ticket) WithSeat(seat Seat) Ticket {
	t.Seat = seat
	return t
}
