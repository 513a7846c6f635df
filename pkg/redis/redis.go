// Package redis wraps go-redis client construction with the defaults the
// service relies on.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultDialTimeout = 5 * time.Second
	_defaultPoolSize    = 10
)

// Option overrides one client setting.
type Option func(*redis.Options)

// PoolSize sets the connection pool size.
func PoolSize(size int) Option {
	return func(o *redis.Options) {
		o.PoolSize = size
	}
}

// DialTimeout sets the timeout for establishing new connections.
func DialTimeout(timeout time.Duration) Option {
	return func(o *redis.Options) {
		o.DialTimeout = timeout
	}
}

// NewClient builds a client for one logical database.
func NewClient(addr, password string, db int, opts ...Option) *redis.Client {
	options := &redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: _defaultDialTimeout,
		PoolSize:    _defaultPoolSize,
	}

	for _, opt := range opts {
		opt(options)
	}

	return redis.NewClient(options)
}

// Ping verifies the server is reachable.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
