// Package registry tracks the set of known usernames and gates message
// operations on membership.
package registry

import (
	"context"
	"errors"
	"time"

	"e2e_relay/internal/model"
	userRepo "e2e_relay/internal/repository/user"
	apperrors "e2e_relay/pkg/errors"
)

type (
	Service struct {
		users userRepo.Repository
	}
)

func NewService(users userRepo.Repository) *Service {
	return &Service{
		users: users,
	}
}

// Register records a new username. Usernames are unauthenticated identifiers;
// registering one only claims it, it proves nothing.
func (s *Service) Register(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, apperrors.InvalidInput("username cannot be empty")
	}

	user := &model.User{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUsername) {
			return nil, apperrors.AlreadyExists("username already registered")
		}
		return nil, apperrors.Internal("create user failed", err)
	}

	return user, nil
}

func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	ok, err := s.users.Exists(ctx, username)
	if err != nil {
		return false, apperrors.Internal("user lookup failed", err)
	}
	return ok, nil
}

// List returns all registered users in registration order.
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("list users failed", err)
	}
	return users, nil
}
