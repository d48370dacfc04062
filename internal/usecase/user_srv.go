package usecase

import (
	"context"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"

	"go.uber.org/zap"
)

type UserService interface {
	Add(ctx context.Context, user entity.User) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Add(ctx context.Context, user entity.User) error {
	if err := s.users.Save(user); err != nil {
		s.log.Warn("Failed to add user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return err
	}
	return nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return s.users.FindByEmail(email)
}
