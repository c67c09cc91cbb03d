package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepo stores the collection blob under a single Redis key, mirroring
// the single-localStorage-key layout of the web client. Quarantined blobs go
// under "<key>:corrupt:<unix-nanos>" with a retention TTL so a corrupted
// payload stays recoverable without growing unbounded.
type RedisRepo struct {
	client *redis.Client
	key    string
}

const quarantineTTL = 30 * 24 * time.Hour

// NewRedisRepo creates a Redis-backed blob repository. Key may be empty, in
// which case the default "nova:documents" is used.
func NewRedisRepo(client *redis.Client, key string) *RedisRepo {
	if key == "" {
		key = "nova:documents"
	}
	return &RedisRepo{client: client, key: key}
}

func (r *RedisRepo) Load(ctx context.Context) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisRepo) Store(ctx context.Context, raw []byte) error {
	return r.client.Set(ctx, r.key, raw, 0).Err()
}

func (r *RedisRepo) Quarantine(ctx context.Context, raw []byte) error {
	key := fmt.Sprintf("%s:corrupt:%d", r.key, time.Now().UnixNano())
	return r.client.Set(ctx, key, raw, quarantineTTL).Err()
}
