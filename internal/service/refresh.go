package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skinpulse/skinpulse/internal/catalog"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/history"
	"golang.org/x/sync/errgroup"
)

type SkinsSource interface {
	FetchAll(ctx context.Context) ([]catalog.RawSkin, error)
}

type ListingSource interface {
	FetchListing(ctx context.Context) ([]entity.ListingEntry, error)
}

type HistoryRecorder interface {
	RecordPrices(ctx context.Context, prices entity.PriceMap, at time.Time) error
	Prune(ctx context.Context, olderThan time.Time) error
}

// Remote points follow the same retention window as local snapshots.
const _remoteRetention = 30 * 24 * time.Hour

// RefreshService owns the price-refresh cycle. It is driven externally, by
// a scheduler or an HTTP trigger, and never runs its own timers.
type RefreshService struct {
	skins       SkinsSource
	listing     ListingSource
	transformer *catalog.Transformer
	catalogs    *catalog.Store
	snapshots   *history.SnapshotLog
	recorder    HistoryRecorder
	producer    domain.MessageProducer
	log         domain.Logger

	mu          sync.RWMutex
	prices      entity.PriceMap
	lastListing []entity.ListingEntry
	items       []entity.SkinItem
}

func NewRefreshService(
	skins SkinsSource,
	listing ListingSource,
	transformer *catalog.Transformer,
	catalogs *catalog.Store,
	snapshots *history.SnapshotLog,
	recorder HistoryRecorder,
	producer domain.MessageProducer,
	log domain.Logger,
) *RefreshService {
	return &RefreshService{
		skins:       skins,
		listing:     listing,
		transformer: transformer,
		catalogs:    catalogs,
		snapshots:   snapshots,
		recorder:    recorder,
		producer:    producer,
		log:         log,
		prices:      entity.PriceMap{},
	}
}

// SyncCatalog performs a full metadata sync. Unlike the price cycle, a
// failure here propagates: without a catalog the caller has nothing to
// show and must be able to offer a retry.
func (s *RefreshService) SyncCatalog(ctx context.Context) error {
	raws, err := s.skins.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch skin metadata: %w", err)
	}

	items, skipped := s.transformer.TransformAll(raws)
	if skipped > 0 {
		s.log.Warn("invalid skin records skipped", "count", skipped)
	}

	if err := s.catalogs.Save(ctx, items); err != nil {
		s.log.Warn("persist catalog", "error", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.log.Info("catalog synced", "items", len(items))

	return nil
}

// RefreshPrices runs one refresh cycle: fetch the listing (and the catalog
// too, when none is loaded yet), rebuild the price map, append a snapshot,
// record the points remotely and publish significant moves. Collaborator
// failures past the fetch are logged and absorbed so a bad cycle never
// takes the service down.
func (s *RefreshService) RefreshPrices(ctx context.Context) error {
	var entries []entity.ListingEntry

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetched, err := s.listing.FetchListing(gctx)
		if err != nil {
			return fmt.Errorf("fetch price listing: %w", err)
		}
		entries = fetched
		return nil
	})

	if len(s.Catalog()) == 0 {
		g.Go(func() error {
			return s.loadOrSyncCatalog(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	prices := buildPriceMap(entries)
	now := time.Now()

	s.mu.Lock()
	previous := s.prices
	s.prices = prices
	s.lastListing = entries
	s.mu.Unlock()

	s.snapshots.Append(ctx, prices)

	if s.recorder != nil {
		if err := s.recorder.RecordPrices(ctx, prices, now); err != nil {
			s.log.Warn("record price points", "error", err)
		}
		if err := s.recorder.Prune(ctx, now.Add(-_remoteRetention)); err != nil {
			s.log.Warn("prune price points", "error", err)
		}
	}

	s.publishSignificantMoves(ctx, previous, prices)

	s.log.Info("prices refreshed", "items", len(prices))

	return nil
}

// CurrentPrices returns a copy of the latest price map.
func (s *RefreshService) CurrentPrices() entity.PriceMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make(entity.PriceMap, len(s.prices))
	for name, quote := range s.prices {
		prices[name] = quote
	}

	return prices
}

// Listing returns the raw entries of the latest refresh.
func (s *RefreshService) Listing() []entity.ListingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastListing
}

// Catalog returns the loaded item list.
func (s *RefreshService) Catalog() []entity.SkinItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items
}

// loadOrSyncCatalog tries the persisted catalog first and falls back to a
// full metadata sync.
func (s *RefreshService) loadOrSyncCatalog(ctx context.Context) error {
	items, err := s.catalogs.Load(ctx)
	if err == nil && len(items) > 0 {
		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
		s.log.Debug("catalog loaded from storage", "items", len(items))
		return nil
	}

	return s.SyncCatalog(ctx)
}

func (s *RefreshService) publishSignificantMoves(ctx context.Context, previous, current entity.PriceMap) {
	if s.producer == nil || len(previous) == 0 {
		return
	}

	published := 0
	for name, quote := range current {
		old, ok := previous[name]
		if !ok || old.Price <= 0 {
			continue
		}

		event := entity.NewPriceUpdateEvent(name, old.Price, quote.Price, quote.Quantity)
		if !event.IsSignificantChange() {
			continue
		}

		if err := s.producer.WriteMessage(ctx, name, event); err != nil {
			s.log.Warn("publish price update", "item", name, "error", err)
			continue
		}
		published++
	}

	if published > 0 {
		s.log.Info("price updates published", "count", published)
	}
}

func buildPriceMap(entries []entity.ListingEntry) entity.PriceMap {
	prices := make(entity.PriceMap, len(entries))

	for _, entry := range entries {
		if entry.MarketHashName == "" || entry.MinPrice <= 0 {
			continue
		}

		minPrice := float64(entry.MinPrice) / 100
		maxPrice := minPrice
		if entry.MaxPrice > 0 {
			maxPrice = float64(entry.MaxPrice) / 100
		}

		prices[entry.MarketHashName] = entity.PriceQuote{
			Price:    (minPrice + maxPrice) / 2,
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Quantity: entry.Quantity,
		}
	}

	return prices
}
