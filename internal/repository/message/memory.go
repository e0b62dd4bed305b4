package message

import (
	"context"
	"sync"

	"e2e_relay/internal/model"
)

type (
	// MemoryRepo holds pending messages in process memory. One mutex covers
	// both id assignment and the per-recipient lists, so appends are totally
	// ordered and Drain's select-and-delete is atomic.
	MemoryRepo struct {
		mu      sync.Mutex
		nextID  int64
		pending map[string][]model.Message
	}
)

var _ Repository = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		pending: make(map[string][]model.Message),
	}
}

func (r *MemoryRepo) Append(ctx context.Context, msg *model.Message) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	msg.ID = r.nextID
	r.pending[msg.Recipient] = append(r.pending[msg.Recipient], *msg)
	return msg.ID, nil
}

func (r *MemoryRepo) Drain(ctx context.Context, recipient string) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.pending[recipient]
	delete(r.pending, recipient)
	return messages, nil
}
