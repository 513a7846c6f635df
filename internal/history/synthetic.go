package history

import (
	"context"
	"math"
	"math/rand"
	"time"

	json "github.com/goccy/go-json"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
)

const (
	_syntheticKeyPrefix = "prices:synthetic:"

	// Generated series are cached so repeated chart loads within a day
	// show the same shape.
	_syntheticCacheTTL = 24 * time.Hour

	_baseJitter  = 0.15 // seed within ±15% of the current price
	_dailyJitter = 0.05 // ±5% multiplicative daily noise
	_maxPull     = 0.30 // up to 30% pull toward the current price near today
)

// Generator produces placeholder price series for items with no recorded
// history yet. The random source is injected so tests can pin the walk.
type Generator struct {
	store domain.KeyValueStore
	rng   *rand.Rand
	log   domain.Logger
	now   func() time.Time
}

// GeneratorOption - configuration hook for tests.
type GeneratorOption func(*Generator)

// WithGeneratorClock overrides the time source.
func WithGeneratorClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(store domain.KeyValueStore, rng *rand.Rand, log domain.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		store: store,
		rng:   rng,
		log:   log,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Series returns a synthetic daily series ending at the current price. A
// cached series is reused until its 24h expiry so repeated calls within a
// day are stable.
func (g *Generator) Series(ctx context.Context, marketHashName string, currentPrice float64, days int) []entity.PriceHistoryPoint {
	if days <= 0 || currentPrice <= 0 {
		return nil
	}

	cacheKey := _syntheticKeyPrefix + marketHashName

	if cached, err := g.store.Get(ctx, cacheKey); err == nil {
		var points []entity.PriceHistoryPoint
		if err := json.Unmarshal([]byte(cached), &points); err == nil && len(points) > 0 {
			return points
		}
		g.log.Debug("discarding corrupt synthetic cache entry", "market_hash_name", marketHashName)
	}

	points := g.walk(currentPrice, days)

	if data, err := json.Marshal(points); err == nil {
		if err := g.store.Set(ctx, cacheKey, string(data), _syntheticCacheTTL); err != nil {
			g.log.Warn("cache synthetic history", "market_hash_name", marketHashName, "error", err)
		}
	}

	return points
}

// walk seeds a base price near the current one and walks it forward with
// daily noise, blending linearly toward the current price as the series
// approaches today.
func (g *Generator) walk(currentPrice float64, days int) []entity.PriceHistoryPoint {
	now := g.now()
	points := make([]entity.PriceHistoryPoint, 0, days)

	price := currentPrice * (1 + (g.rng.Float64()*2-1)*_baseJitter)

	for day := 0; day < days; day++ {
		price *= 1 + (g.rng.Float64()*2-1)*_dailyJitter

		progress := 0.0
		if days > 1 {
			progress = float64(day) / float64(days-1)
		}
		blended := price + (currentPrice-price)*(_maxPull*progress)

		points = append(points, entity.PriceHistoryPoint{
			Timestamp: now.AddDate(0, 0, -(days - 1 - day)),
			Price:     round2(blended),
		})
	}

	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
