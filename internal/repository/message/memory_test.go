package message

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_relay/internal/model"
)

func append3(t *testing.T, repo *MemoryRepo, recipient string) {
	t.Helper()
	ctx := context.Background()
	for _, payload := range []string{"ct1", "ct2", "ct3"} {
		_, err := repo.Append(ctx, &model.Message{
			Sender:    "alice",
			Recipient: recipient,
			Encrypted: payload,
			Timestamp: time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestMemoryRepo_AppendAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	id1, err := repo.Append(ctx, &model.Message{Recipient: "bob", Encrypted: "ct1"})
	require.NoError(t, err)
	id2, err := repo.Append(ctx, &model.Message{Recipient: "carol", Encrypted: "ct2"})
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}

func TestMemoryRepo_DrainReturnsInsertionOrderAndPurges(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	append3(t, repo, "bob")

	messages, err := repo.Drain(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "ct1", messages[0].Encrypted)
	assert.Equal(t, "ct2", messages[1].Encrypted)
	assert.Equal(t, "ct3", messages[2].Encrypted)
	for i := 1; i < len(messages); i++ {
		assert.Greater(t, messages[i].ID, messages[i-1].ID)
	}

	again, err := repo.Drain(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestMemoryRepo_DrainLeavesOtherMailboxes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	append3(t, repo, "bob")
	append3(t, repo, "carol")

	_, err := repo.Drain(ctx, "bob")
	require.NoError(t, err)

	messages, err := repo.Drain(ctx, "carol")
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestMemoryRepo_ConcurrentDrainsNeverDoubleDeliver(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	const pending = 100
	for i := 0; i < pending; i++ {
		_, err := repo.Append(ctx, &model.Message{Recipient: "bob", Encrypted: "ct"})
		require.NoError(t, err)
	}

	const drainers = 8
	var wg sync.WaitGroup
	results := make(chan []model.Message, drainers)

	for i := 0; i < drainers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			messages, err := repo.Drain(ctx, "bob")
			assert.NoError(t, err)
			results <- messages
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	total := 0
	for messages := range results {
		for _, m := range messages {
			assert.False(t, seen[m.ID], "message %d delivered twice", m.ID)
			seen[m.ID] = true
			total++
		}
	}
	assert.Equal(t, pending, total)
}

func TestMemoryRepo_ConcurrentAppendsTotallyOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	const senders = 20
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Append(ctx, &model.Message{Recipient: "bob", Encrypted: "ct"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	messages, err := repo.Drain(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, senders)
	for i := 1; i < len(messages); i++ {
		assert.Greater(t, messages[i].ID, messages[i-1].ID)
	}
}
