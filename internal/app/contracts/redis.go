package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. Get returns "" for a missing key.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}
