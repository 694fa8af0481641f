package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
	"tourbook/internal/util"
)

var (
	ErrUserValidation     = errors.New("user validation failed")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	users ports.UserRepository
}

func NewUserService(userRepo ports.UserRepository) *UserService {
	return &UserService{users: userRepo}
}

// SignUp creates an account. The plaintext password never reaches the
// store; only its bcrypt hash is persisted.
func (s *UserService) SignUp(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrUserValidation)
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserValidation, err)
	}
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := s.users.Create(ctx, username, hash, role)
	if err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &domain.User{ID: id, Username: username, PasswordHash: hash, Role: role}, nil
}

// Authenticate checks the credentials and returns the account. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
