package programcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	dmn "github.com/gridcarve/carver-api/domain"
	"github.com/redis/go-redis/v9"
)

// RedisProgramCache stores generated motion programs in Redis with TTL
// support, and hands out a per-key lock so concurrent identical requests
// carve only once.
type RedisProgramCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisProgramCache initializes a RedisProgramCache with the provided
// Redis client and TTL.
func NewRedisProgramCache(client *redis.Client, ttlSeconds int) (*RedisProgramCache, error) {
	cache := &RedisProgramCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the cached program for a key, or nil on a miss.
func (rpc *RedisProgramCache) Fetch(ctx context.Context, key string) (*dmn.Program, error) {
	payload, err := rpc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var program dmn.Program
	if err := json.Unmarshal(payload, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// Store caches a program under a key with the cache's TTL.
func (rpc *RedisProgramCache) Store(ctx context.Context, key string, program *dmn.Program) error {
	payload, err := json.Marshal(program)
	if err != nil {
		return err
	}
	return rpc.client.Set(ctx, key, payload, rpc.ttl).Err()
}

// Guard runs fn while holding a distributed mutex for the key.
func (rpc *RedisProgramCache) Guard(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	mutex := rpc.locker.NewMutex(key + ":fill_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return fn(ctx)
}
