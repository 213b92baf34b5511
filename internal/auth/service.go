package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kurochkinivan/file_catalog/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UsersProvider interface {
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Service struct {
	users UsersProvider
}

func NewService(users UsersProvider) *Service {
	return &Service{users: users}
}

// Verify checks the username/password pair against the credential store.
func (s *Service) Verify(ctx context.Context, username, password string) error {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// HashPassword produces a bcrypt hash suitable for the users table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
