package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared Store used when the app runs with more than one
// replica: invalidating a tag on one instance must evict the reads cached by
// every other. Each tag keeps a set of the URL keys cached under it.
type Redis struct {
	Client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{Client: client}
}

func tagIndexKey(tag string) string {
	return "tag:" + tag
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration) error {
	pipe := r.Client.TxPipeline()
	pipe.Set(ctx, key, value, ttl)
	pipe.SAdd(ctx, tagIndexKey(tag), key)
	// keep the index alive a little longer than its newest member
	pipe.Expire(ctx, tagIndexKey(tag), ttl+time.Minute)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		keys, err := r.Client.SMembers(ctx, tagIndexKey(tag)).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		keys = append(keys, tagIndexKey(tag))
		if err := r.Client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}
