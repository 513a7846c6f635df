package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/internal/api/handler"
	"github.com/skinpulse/skinpulse/internal/bootstrap"
	"golang.org/x/sync/errgroup"
)

// Run starts the full service: the HTTP API plus the refresh scheduler.
func Run(ctx context.Context, cfg *config.Config) error {
	log := bootstrap.InitLogger(cfg)
	log.Info("starting skinpulse", "version", cfg.App.Version)

	kv, closeKV, err := bootstrap.InitKeyValueStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init key-value store: %w", err)
	}
	defer closeKV()

	historyRepo, closeHistory, err := bootstrap.InitHistoryRepository(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init history repository: %w", err)
	}
	defer closeHistory()

	producer, err := bootstrap.InitPriceProducer(cfg)
	if err != nil {
		return fmt.Errorf("init price producer: %w", err)
	}
	if producer != nil {
		defer producer.Close()
	}

	skins, listing := bootstrap.InitClients(cfg, log)

	refresher := bootstrap.InitRefreshService(skins, listing, kv, historyRepo, producer, log)
	tracker := bootstrap.InitTrackerService(refresher, kv, historyRepo, log)

	trackerHandler := handler.NewTrackerHandler(tracker, refresher, log)
	server := bootstrap.InitHTTPServer(cfg, trackerHandler, log)

	interval := time.Duration(cfg.Refresh.IntervalMinutes) * time.Minute

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bootstrap.RunHTTPServer(gctx, server, log.WithField("component", "http"))
	})

	g.Go(func() error {
		return bootstrap.RunScheduler(gctx, refresher, interval, log.WithField("component", "scheduler"))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("skinpulse stopped")

	return nil
}

// RunRefresher starts the refresh loop only, without the HTTP API.
func RunRefresher(ctx context.Context, cfg *config.Config) error {
	log := bootstrap.InitLogger(cfg)
	log.Info("starting skinpulse refresher", "version", cfg.App.Version)

	kv, closeKV, err := bootstrap.InitKeyValueStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init key-value store: %w", err)
	}
	defer closeKV()

	historyRepo, closeHistory, err := bootstrap.InitHistoryRepository(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init history repository: %w", err)
	}
	defer closeHistory()

	producer, err := bootstrap.InitPriceProducer(cfg)
	if err != nil {
		return fmt.Errorf("init price producer: %w", err)
	}
	if producer != nil {
		defer producer.Close()
	}

	skins, listing := bootstrap.InitClients(cfg, log)
	refresher := bootstrap.InitRefreshService(skins, listing, kv, historyRepo, producer, log)

	interval := time.Duration(cfg.Refresh.IntervalMinutes) * time.Minute

	if err := bootstrap.RunScheduler(ctx, refresher, interval, log.WithField("component", "scheduler")); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("skinpulse refresher stopped")

	return nil
}
