package bootstrap

import (
	"context"
	"fmt"

	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/storage/pghistory"
	"github.com/skinpulse/skinpulse/internal/storage/rediskv"
	"github.com/skinpulse/skinpulse/pkg/postgres"
	"github.com/skinpulse/skinpulse/pkg/redis"
)

func InitKeyValueStore(ctx context.Context, cfg *config.Config) (*rediskv.Store, func(), error) {
	client := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	if err := redis.Ping(ctx, client); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	closeFn := func() {
		client.Close()
	}

	return rediskv.New(client), closeFn, nil
}

// InitHistoryRepository connects the remote history tier. When Postgres is
// disabled the reconciler simply starts at the local tier.
func InitHistoryRepository(ctx context.Context, cfg *config.Config, log domain.Logger) (*pghistory.Repository, func(), error) {
	if !cfg.PG.Enabled {
		return nil, func() {}, nil
	}

	pg, err := postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	repo, err := pghistory.New(ctx, pg, log)
	if err != nil {
		pg.Close()
		return nil, nil, fmt.Errorf("init history repository: %w", err)
	}

	return repo, pg.Close, nil
}
