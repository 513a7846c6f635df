package trending

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/market"
)

const (
	_sparklinePoints = 12

	// Volatility estimate bounds, in percent. Thin listings get noisier
	// estimates than liquid ones.
	_minVolatility = 1.0
	_maxVolatility = 25.0
)

// Processor builds the ranked trending view from a raw price listing and
// the skin catalog. The random source drives the volatility estimate and
// sparkline walk and is injected so tests can pin the output.
type Processor struct {
	rng *rand.Rand
	log domain.Logger
}

func NewProcessor(rng *rand.Rand, log domain.Logger) *Processor {
	return &Processor{
		rng: rng,
		log: log,
	}
}

// Build matches listing entries to catalog metadata, derives per-item
// volatility and sparklines, and ranks the result. Entries without a
// catalog match are dropped: without metadata there is no image, rarity or
// category to show.
func (p *Processor) Build(listing []entity.ListingEntry, catalog []entity.SkinItem) []entity.TrendingItem {
	lookup := buildCatalogLookup(catalog)

	items := make([]entity.TrendingItem, 0, len(listing))
	dropped := 0

	for _, entry := range listing {
		skin, ok := lookup[entry.MarketHashName]
		if !ok {
			dropped++
			continue
		}

		item := p.buildItem(entry, skin)
		if item.CurrentPrice <= 0 {
			continue
		}
		items = append(items, item)
	}

	if dropped > 0 {
		p.log.Debug("trending entries without catalog match dropped", "count", dropped)
	}

	Rank(items)
	return items
}

func (p *Processor) buildItem(entry entity.ListingEntry, skin entity.SkinItem) entity.TrendingItem {
	minPrice := float64(entry.MinPrice) / 100
	maxPrice := minPrice
	if entry.MaxPrice > 0 {
		maxPrice = float64(entry.MaxPrice) / 100
	}
	price := (minPrice + maxPrice) / 2

	changePct := p.estimateChange(entry.Quantity)

	return entity.TrendingItem{
		MarketHashName: entry.MarketHashName,
		Name:           skin.Name,
		Wear:           ExtractWear(entry.MarketHashName),
		StatTrak:       strings.Contains(entry.MarketHashName, market.StatTrakMarker),
		Souvenir:       strings.HasPrefix(entry.MarketHashName, market.SouvenirMarker+" "),
		Category:       skin.Category,
		Rarity:         skin.Rarity,
		RarityColor:    skin.RarityColor,
		ImageURL:       skin.ImageURL,
		CurrentPrice:   price,
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		Quantity:       entry.Quantity,
		PriceChangePct: changePct,
		Sparkline:      p.sparkline(price, changePct),
	}
}

// estimateChange derives a signed volatility estimate from listing volume.
// Low-volume items swing harder; the direction is random.
func (p *Processor) estimateChange(quantity int) float64 {
	volatility := _maxVolatility / math.Log2(float64(quantity)+2)
	if volatility < _minVolatility {
		volatility = _minVolatility
	}
	if volatility > _maxVolatility {
		volatility = _maxVolatility
	}

	return round2((p.rng.Float64()*2 - 1) * volatility)
}

// sparkline walks from the implied reference price toward the current one
// with bounded noise.
func (p *Processor) sparkline(price, changePct float64) []float64 {
	start := price / (1 + changePct/100)

	points := make([]float64, _sparklinePoints)
	for i := range points {
		progress := float64(i) / float64(_sparklinePoints-1)
		value := start + (price-start)*progress
		noise := 1 + (p.rng.Float64()*2-1)*0.02*(1-progress)
		points[i] = round2(value * noise)
	}
	points[_sparklinePoints-1] = round2(price)

	return points
}

// Rank orders items by volatility weighted by liquidity, in place. The
// log(qty+1) factor keeps illiquid items with noisy swings from dominating.
func Rank(items []entity.TrendingItem) {
	for i := range items {
		items[i].Score = Score(items[i].PriceChangePct, items[i].Quantity)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}

// Score - composite ranking score of one item.
func Score(changePct float64, quantity int) float64 {
	return math.Abs(changePct) * math.Log(float64(quantity)+1)
}

// FilterByCategory restricts a ranked list using the classifier keyword
// rules on the market name. It works even when structured metadata never
// made it onto the item. An empty category means no restriction; Other
// selects items no rule recognizes, such as stickers and cases.
func FilterByCategory(items []entity.TrendingItem, category entity.Category) []entity.TrendingItem {
	if category == "" {
		return items
	}

	filtered := make([]entity.TrendingItem, 0, len(items))
	for _, item := range items {
		if market.Classify(item.MarketHashName) == category {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// ExtractWear pulls the wear tier out of a trailing parenthesized suffix,
// if the suffix names one.
func ExtractWear(marketHashName string) entity.Wear {
	open := strings.LastIndex(marketHashName, "(")
	if open == -1 || !strings.HasSuffix(marketHashName, ")") {
		return ""
	}

	candidate := entity.Wear(marketHashName[open+1 : len(marketHashName)-1])
	for _, wear := range entity.AllWears {
		if candidate == wear {
			return wear
		}
	}

	return ""
}

// buildCatalogLookup expands every catalog skin across its wears and
// variant markers into distinct market hash name keys.
func buildCatalogLookup(catalog []entity.SkinItem) map[string]entity.SkinItem {
	lookup := make(map[string]entity.SkinItem, len(catalog)*4)

	for _, skin := range catalog {
		if len(skin.Wears) == 0 {
			lookup[skin.Name] = skin
			if skin.StatTrak {
				lookup[market.StatTrakMarker+" "+skin.Name] = skin
			}
			if skin.Souvenir {
				lookup[market.SouvenirMarker+" "+skin.Name] = skin
			}
			continue
		}

		for _, wear := range skin.Wears {
			suffix := " (" + string(wear) + ")"
			lookup[skin.Name+suffix] = skin
			if skin.StatTrak {
				lookup[market.StatTrakMarker+" "+skin.Name+suffix] = skin
			}
			if skin.Souvenir {
				lookup[market.SouvenirMarker+" "+skin.Name+suffix] = skin
			}
		}
	}

	return lookup
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
