package wire

import (
	"train-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/api/seats", func(r chi.Router) {
		// GET /api/seats/available/{section} - Open seats in a section
		r.Get("/available/{section}", seatHandler.AvailableSeats)

		// GET /api/seats/allocated/{section} - Who sits where in a section
		r.Get("/allocated/{section}", seatHandler.AllocatedBySection)
	})
}
