package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/models"
)

// userRepository is the in-memory stub user store. Users live as long as the
// process does.
type userRepository struct {
	mu    sync.RWMutex
	users []models.User

	logger *logger.Logger
}

func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
	}
}

// AddUser appends user unless its email is already registered. Emails are
// compared case-insensitively after trimming.
func (r *userRepository) AddUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.TrimSpace(user.Email)
	if _, ok := r.find(user.Email); ok {
		logger.FromContext(ctx).Debug().Str("func", "*userRepository.AddUser").Msg("email already registered")
		return models.User{}, ErrEmailAlreadyExists
	}

	r.users = append(r.users, user)
	return user, nil
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.find(strings.TrimSpace(email))
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *userRepository) find(email string) (models.User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}
