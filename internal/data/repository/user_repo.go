package repository

import (
	"fmt"
	"sync"

	"train-booking/internal/data/entity"

	"go.uber.org/zap"
)

type UserRepository interface {
	Save(user entity.User) error
	FindByEmail(email string) (entity.User, error)
	FindAll() map[string]entity.User
}

// userRepository keeps users in process memory, keyed by email. Email is
// matched exactly; no normalization happens here.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
	log   *zap.Logger
}

func NewUserRepository(log *zap.Logger) UserRepository {
	return &userRepository{
		users: make(map[string]entity.User),
		log:   log,
	}
}

func (ur *userRepository) Save(user entity.User) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	if _, ok := ur.users[user.Email]; ok {
		return fmt.Errorf("save user %s: %w", user.Email, ErrUserAlreadyExists)
	}
	ur.users[user.Email] = user

	ur.log.Info("User saved", zap.String("email", user.Email))
	return nil
}

func (ur *userRepository) FindByEmail(email string) (entity.User, error) {
	ur.mu.RLock()
	defer ur.mu.RUnlock()

	user, ok := ur.users[email]
	if !ok {
		return entity.User{}, fmt.Errorf("find user by email %s: %w", email, ErrUserNotFound)
	}
	return user, nil
}

// FindAll returns a copy; the internal map never escapes.
func (ur *userRepository) FindAll() map[string]entity.User {
	ur.mu.RLock()
	defer ur.mu.RUnlock()

	users := make(map[string]entity.User, len(ur.users))
	for email, user := range ur.users {
		users[email] = user
	}
	return users
}
