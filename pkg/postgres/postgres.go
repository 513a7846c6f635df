package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	_defaultMaxPoolSize  = 10
	_defaultConnAttempts = 3
	_defaultConnTimeout  = 5 * time.Second
)

// Postgres - pgx connection pool wrapper.
type Postgres struct {
	Pool *pgxpool.Pool

	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration
}

func New(ctx context.Context, url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(pg)
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = int32(pg.maxPoolSize)

	for attempt := pg.connAttempts; attempt > 0; attempt-- {
		pg.Pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			break
		}
		time.Sleep(pg.connTimeout)
	}

	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", pg.connAttempts, err)
	}

	if err := pg.Pool.Ping(ctx); err != nil {
		pg.Pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
