package user

import (
	"context"
	"sync"

	"e2e_relay/internal/model"
)

type (
	// MemoryRepo keeps the registry in process memory. A single mutex guards
	// every operation, so Create's uniqueness check is atomic with the insert.
	MemoryRepo struct {
		mu     sync.Mutex
		byName map[string]struct{}
		users  []model.User
	}
)

var _ Repository = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byName: make(map[string]struct{}),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return ErrDuplicateUsername
	}

	r.byName[user.Username] = struct{}{}
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byName[username]
	return ok, nil
}

// List returns users in registration order.
func (r *MemoryRepo) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
