package wire

import (
	"train-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// POST /api/tickets/purchase - Buy a ticket for a section
		r.Post("/purchase", ticketHandler.Purchase)

		// GET /api/tickets/{email}/receipt - Show the user's ticket
		r.Get("/{email}/receipt", ticketHandler.GetReceipt)

		// DELETE /api/tickets/{email}/remove - Remove the user from the train
		r.Delete("/{email}/remove", ticketHandler.Cancel)

		// PUT /api/tickets/{email}/modify-seat - Move the user to another seat
		r.Put("/{email}/modify-seat", ticketHandler.ModifySeat)
	})
}
