package user

import (
	"context"
	"errors"

	"e2e_relay/internal/model"
)

// ErrDuplicateUsername is returned by Create when the username is already
// registered. Backends must make the uniqueness check atomic with the insert.
var ErrDuplicateUsername = errors.New("username already registered")

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	Exists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
}
