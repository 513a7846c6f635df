package entity

import "time"

// PriceQuote - a single listing price, already converted to currency units.
type PriceQuote struct {
	Price    float64 `json:"price"`
	MinPrice float64 `json:"min"`
	MaxPrice float64 `json:"max"`
	Quantity int     `json:"quantity"`
}

// PriceMap maps canonical market hash names to their latest quote. Rebuilt
// on every refresh cycle, never persisted directly.
type PriceMap map[string]PriceQuote

// ListingEntry - raw record from the price-listing feed. Prices are in
// integer cents.
type ListingEntry struct {
	MarketHashName string `json:"market_hash_name"`
	MinPrice       int    `json:"min_price"`
	MaxPrice       int    `json:"max_price,omitempty"`
	Quantity       int    `json:"qty"`
}

// PriceSnapshot - a timestamped full copy of the price map. Immutable once
// written to the snapshot log.
type PriceSnapshot struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
	Prices    PriceMap  `json:"prices"`
}

// PriceHistoryPoint - one chartable point of a price series.
type PriceHistoryPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// TrendStats - aggregate statistics over a price series.
type TrendStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Avg     float64 `json:"avg"`
	Current float64 `json:"current"`
}

// Trend - direction of a price series.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// StableTrendThreshold - percentage band within which a change counts as
// stable.
const StableTrendThreshold = 5.0

// PriceChange - first-to-last movement of a price series.
type PriceChange struct {
	AbsoluteChange   float64 `json:"absolute_change"`
	PercentageChange float64 `json:"percentage_change"`
	Trend            Trend   `json:"trend"`
}

// PriceStatsPeriod - trailing window for chart filtering.
type PriceStatsPeriod string

const (
	Period7d  PriceStatsPeriod = "7d"
	Period14d PriceStatsPeriod = "14d"
	Period30d PriceStatsPeriod = "30d"
)

// Duration - window length for the period.
func (p PriceStatsPeriod) Duration() time.Duration {
	switch p {
	case Period7d:
		return 7 * 24 * time.Hour
	case Period14d:
		return 14 * 24 * time.Hour
	case Period30d:
		return 30 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Days - window length in days, used to size synthetic series.
func (p PriceStatsPeriod) Days() int {
	return int(p.Duration() / (24 * time.Hour))
}

// PriceUpdateEvent - published to Kafka after a refresh cycle moves a price.
type PriceUpdateEvent struct {
	MarketHashName string    `json:"market_hash_name"`
	OldPrice       float64   `json:"old_price"`
	NewPrice       float64   `json:"new_price"`
	PriceChange    float64   `json:"price_change"`
	Quantity       int       `json:"quantity"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewPriceUpdateEvent - build an update event from the previous and current
// quote of one market name.
func NewPriceUpdateEvent(marketHashName string, oldPrice, newPrice float64, quantity int) *PriceUpdateEvent {
	priceChange := 0.0
	if oldPrice > 0 {
		priceChange = ((newPrice - oldPrice) / oldPrice) * 100
	}

	return &PriceUpdateEvent{
		MarketHashName: marketHashName,
		OldPrice:       oldPrice,
		NewPrice:       newPrice,
		PriceChange:    priceChange,
		Quantity:       quantity,
		Timestamp:      time.Now(),
	}
}

// IsSignificantChange reports whether the move clears the stable band.
func (e *PriceUpdateEvent) IsSignificantChange() bool {
	return e.PriceChange >= StableTrendThreshold || e.PriceChange <= -StableTrendThreshold
}
