package wire

import (
	"train-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// GET /api/users/{email} - User lookup by email
	r.Get("/api/users/{email}", userHandler.GetByEmail)
}
