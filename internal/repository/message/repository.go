package message

import (
	"context"

	"e2e_relay/internal/model"
)

type Repository interface {
	// Append stores the message, assigning it the next id in the store's
	// monotonic sequence, and returns that id.
	Append(ctx context.Context, msg *model.Message) (int64, error)

	// Drain atomically removes and returns every pending message addressed
	// to recipient, ordered by ascending id. Concurrent drains of the same
	// recipient never both return the same message.
	Drain(ctx context.Context, recipient string) ([]model.Message, error)
}
