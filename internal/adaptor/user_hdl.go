package adaptor

import (
	"errors"
	"net/http"

	"train-booking/internal/data/repository"
	"train-booking/internal/dto/response"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetByEmail handles GET /api/users/{email}
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get user", zap.Error(err), zap.String("email", email))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", response.UserToResponse(user))
}
