package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kurochkinivan/file_catalog/internal/auth"
	"github.com/kurochkinivan/file_catalog/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeUsersProvider struct {
	users   map[string]*domain.User
	nextErr error
}

func (p *fakeUsersProvider) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	if p.nextErr != nil {
		return nil, p.nextErr
	}

	user, ok := p.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return user, nil
}

func TestService_Verify(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	provider := &fakeUsersProvider{users: map[string]*domain.User{
		"alice": {ID: 1, Username: "alice", PasswordHash: hash},
	}}
	service := auth.NewService(provider)

	require.NoError(t, service.Verify(context.Background(), "alice", "s3cret"))
}

func TestService_Verify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	provider := &fakeUsersProvider{users: map[string]*domain.User{
		"alice": {ID: 1, Username: "alice", PasswordHash: hash},
	}}
	service := auth.NewService(provider)

	err = service.Verify(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Verify_UnknownUser(t *testing.T) {
	t.Parallel()

	provider := &fakeUsersProvider{users: map[string]*domain.User{}}
	service := auth.NewService(provider)

	err := service.Verify(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Verify_ProviderError(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("connection lost")
	provider := &fakeUsersProvider{nextErr: providerErr}
	service := auth.NewService(provider)

	err := service.Verify(context.Background(), "alice", "s3cret")
	require.ErrorIs(t, err, providerErr)
	require.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
