package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a request only when it fits the window, so
// rejected requests do not extend a client's penalty.
const fixedWindowScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local ttl = tonumber(ARGV[2])

local current = tonumber(redis.call("GET", key) or "0")
if current >= limit then
    return {0, current, redis.call("PTTL", key)}
end

local newVal = redis.call("INCR", key)
if newVal == 1 then
    redis.call("PEXPIRE", key, ttl)
end

return {1, newVal, redis.call("PTTL", key)}
`

// RedisStore shares fixed windows between instances through Redis
type RedisStore struct {
	client *redis.Client
	script *redis.Script
	prefix string
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		script: redis.NewScript(fixedWindowScript),
		prefix: "astrobooking:ratelimit",
		now:    time.Now,
	}
}

// NewRedisStoreFromURL connects to Redis and checks the connection
func NewRedisStoreFromURL(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewRedisStore(client), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Take(ctx context.Context, policy Policy, key string) (Decision, error) {
	now := s.now()
	window := now.UnixMilli() / policy.Window.Milliseconds()
	redisKey := fmt.Sprintf("%s:%s:%s:%d", s.prefix, policy.Name, key, window)

	result, err := s.script.Run(ctx, s.client, []string{redisKey}, policy.Limit, policy.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}
	if len(result) != 3 {
		return Decision{}, fmt.Errorf("rate limit check returned %d values", len(result))
	}

	ttl := time.Duration(result[2]) * time.Millisecond
	if ttl < 0 {
		ttl = policy.Window
	}

	return Decision{
		Allowed:   result[0] == 1,
		Limit:     policy.Limit,
		Remaining: max(policy.Limit-int(result[1]), 0),
		ResetAt:   now.Add(ttl),
	}, nil
}
