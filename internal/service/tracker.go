package service

import (
	"context"
	"time"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/history"
	"github.com/skinpulse/skinpulse/internal/market"
	"github.com/skinpulse/skinpulse/internal/trending"
)

type PriceProvider interface {
	CurrentPrices() entity.PriceMap
	Listing() []entity.ListingEntry
	Catalog() []entity.SkinItem
}

// PriceResponse - a resolved quote plus its display strings.
type PriceResponse struct {
	entity.PriceQuote
	MatchedName    string `json:"matched_name"`
	Approximate    bool   `json:"approximate"`
	Formatted      string `json:"formatted"`
	FormattedRange string `json:"formatted_range"`
}

// ChartResponse - a reconciled price series with its derived statistics.
type ChartResponse struct {
	MarketHashName   string                     `json:"market_hash_name"`
	Period           entity.PriceStatsPeriod    `json:"period"`
	Points           []entity.PriceHistoryPoint `json:"points"`
	Change           entity.PriceChange         `json:"change"`
	Stats            entity.TrendStats          `json:"stats"`
	FormattedCurrent string                     `json:"formatted_current"`
}

// TrackerService composes the resolver, the history reconciler and the
// trending processor into the read operations the presentation layer
// calls.
type TrackerService struct {
	provider   PriceProvider
	reconciler *history.Reconciler
	trending   *trending.Processor
	log        domain.Logger
}

func NewTrackerService(
	provider PriceProvider,
	reconciler *history.Reconciler,
	trendingProc *trending.Processor,
	log domain.Logger,
) *TrackerService {
	return &TrackerService{
		provider:   provider,
		reconciler: reconciler,
		trending:   trendingProc,
		log:        log,
	}
}

// Price resolves one skin request against the latest price map. A nil
// result means no listing matched anywhere, which callers display as a
// normal "no data" state.
func (s *TrackerService) Price(req market.Request) *PriceResponse {
	quote := market.Resolve(s.provider.CurrentPrices(), req)
	if quote == nil {
		return nil
	}

	return &PriceResponse{
		PriceQuote:     quote.PriceQuote,
		MatchedName:    quote.MatchedName,
		Approximate:    quote.Approximate,
		Formatted:      market.FormatPrice(quote.Price),
		FormattedRange: market.FormatRange(quote.MinPrice, quote.MaxPrice, quote.Price),
	}
}

// Chart reconciles the price history of one skin and restricts it to the
// requested trailing window.
func (s *TrackerService) Chart(ctx context.Context, req market.Request, period entity.PriceStatsPeriod) *ChartResponse {
	var currentPrice *float64
	marketHashName := market.MarketHashName(req)

	if quote := market.Resolve(s.provider.CurrentPrices(), req); quote != nil {
		currentPrice = &quote.Price
		marketHashName = quote.MatchedName
	}

	resolved := 0.0
	if currentPrice != nil {
		resolved = *currentPrice
	}

	points := s.reconciler.History(ctx, marketHashName, resolved, period.Days())
	points = history.FilterPeriod(points, period, time.Now())

	return &ChartResponse{
		MarketHashName:   marketHashName,
		Period:           period,
		Points:           points,
		Change:           history.ChangeStats(points),
		Stats:            history.Stats(points),
		FormattedCurrent: market.FormatOptionalPrice(currentPrice),
	}
}

// Trending builds the ranked trending view from the latest listing,
// optionally restricted to one category.
func (s *TrackerService) Trending(category entity.Category) []entity.TrendingItem {
	items := s.trending.Build(s.provider.Listing(), s.provider.Catalog())
	return trending.FilterByCategory(items, category)
}
