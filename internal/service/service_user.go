package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
)

// userService is the concrete implementation of UserService.
//
// It is a sign-up stub: passwords are stored and compared as given. Do not
// put it in front of real accounts.
type userService struct {
	userRepository store.UserRepository
	idGenerator    utils.IDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, idGenerator utils.IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		idGenerator:    idGenerator,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// AddUser registers a new user.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if the email or password is empty.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
func (u *userService) AddUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("func", "*userService.AddUser").Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.AddUser(ctx, models.User{
		ID:        u.idGenerator.Generate(),
		Email:     strings.TrimSpace(creds.Email),
		Password:  creds.Password,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.AddUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

func (u *userService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

// SignIn looks the user up by email and compares the password verbatim.
func (u *userService) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := u.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		return models.User{}, err
	}

	if user.Password != creds.Password {
		logger.FromContext(ctx).Debug().Str("func", "*userService.SignIn").Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}
