package message

import (
	"context"
	"encoding/json"
	"fmt"

	"e2e_relay/internal/model"
	redisSvc "e2e_relay/internal/service/redis"
)

const nextIDKey = "mailbox:next_id"

type (
	// RedisRepo keeps one redis list per recipient. A single script assigns
	// the id and appends, so lists are always in id order; another script
	// removes a whole list atomically on drain.
	RedisRepo struct {
		redisService *redisSvc.RedisService
	}
)

var _ Repository = (*RedisRepo)(nil)

func NewRedisRepo(redisService *redisSvc.RedisService) *RedisRepo {
	return &RedisRepo{
		redisService: redisService,
	}
}

func mailboxKey(recipient string) string {
	return fmt.Sprintf("mailbox:%s", recipient)
}

func (r *RedisRepo) Append(ctx context.Context, msg *model.Message) (int64, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0, err
	}

	id, err := r.redisService.PushWithID(ctx, mailboxKey(msg.Recipient), nextIDKey, data)
	if err != nil {
		return 0, err
	}
	msg.ID = id
	return id, nil
}

func (r *RedisRepo) Drain(ctx context.Context, recipient string) ([]model.Message, error) {
	vals, err := r.redisService.DrainList(ctx, mailboxKey(recipient))
	if err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(vals))
	for _, v := range vals {
		var m model.Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}
