package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type (
	RedisService struct {
		rdb *redis.Client
	}
)

// drainScript reads and deletes a list in a single atomic step, so two
// concurrent drains of the same key can never both observe an element.
var drainScript = redis.NewScript(`
local vals = redis.call('LRANGE', KEYS[1], 0, -1)
redis.call('DEL', KEYS[1])
return vals
`)

// pushScript reserves the next id and appends the message in the same atomic
// step. Doing both in one script keeps list order equal to id order and
// closes the window where a reserved id could land after a drain.
var pushScript = redis.NewScript(`
local id = redis.call('INCR', KEYS[2])
local msg = cjson.decode(ARGV[1])
msg.id = id
redis.call('RPUSH', KEYS[1], cjson.encode(msg))
return id
`)

func NewRedis(rdb *redis.Client) *RedisService {
	return &RedisService{
		rdb: rdb,
	}
}

// PushWithID appends the JSON document in data to listKey with its "id"
// field set from the counter at counterKey, and returns the assigned id.
func (r *RedisService) PushWithID(ctx context.Context, listKey, counterKey string, data []byte) (int64, error) {
	return pushScript.Run(ctx, r.rdb, []string{listKey, counterKey}, data).Int64()
}

func (r *RedisService) DrainList(ctx context.Context, key string) ([]string, error) {
	return drainScript.Run(ctx, r.rdb, []string{key}).StringSlice()
}
