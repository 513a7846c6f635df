package trending

import (
	"math"
	"math/rand"
	"testing"

	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func testCatalog() []entity.SkinItem {
	return []entity.SkinItem{
		{
			Name:        "AK-47 | Redline",
			Weapon:      "AK-47",
			Category:    entity.CategoryRifle,
			Rarity:      "Classified",
			RarityColor: "#d32ce6",
			Wears:       []entity.Wear{entity.WearFieldTested, entity.WearMinimalWear},
			StatTrak:    true,
		},
		{
			Name:     "★ Karambit | Fade",
			Weapon:   "★ Karambit",
			Category: entity.CategoryKnife,
			Rarity:   "Covert",
			Wears:    []entity.Wear{entity.WearFactoryNew},
			StatTrak: true,
		},
	}
}

func TestProcessor_Build(t *testing.T) {
	p := NewProcessor(rand.New(rand.NewSource(1)), nopLogger{})

	listing := []entity.ListingEntry{
		{MarketHashName: "AK-47 | Redline (Field-Tested)", MinPrice: 1500, MaxPrice: 1600, Quantity: 120},
		{MarketHashName: "StatTrak™ AK-47 | Redline (Field-Tested)", MinPrice: 4200, MaxPrice: 4400, Quantity: 30},
		{MarketHashName: "★ Karambit | Fade (Factory New)", MinPrice: 190000, Quantity: 4},
		{MarketHashName: "Unknown Item (Field-Tested)", MinPrice: 100, Quantity: 5},
	}

	items := p.Build(listing, testCatalog())

	// The unmatched entry is dropped.
	require.Len(t, items, 3)

	byName := make(map[string]entity.TrendingItem, len(items))
	for _, item := range items {
		byName[item.MarketHashName] = item
	}

	redline := byName["AK-47 | Redline (Field-Tested)"]
	assert.Equal(t, "AK-47 | Redline", redline.Name)
	assert.Equal(t, entity.WearFieldTested, redline.Wear)
	assert.Equal(t, entity.CategoryRifle, redline.Category)
	assert.Equal(t, 15.00, redline.MinPrice)
	assert.Equal(t, 16.00, redline.MaxPrice)
	assert.Equal(t, 15.50, redline.CurrentPrice)
	assert.False(t, redline.StatTrak)

	st := byName["StatTrak™ AK-47 | Redline (Field-Tested)"]
	assert.True(t, st.StatTrak)

	knife := byName["★ Karambit | Fade (Factory New)"]
	assert.Equal(t, entity.CategoryKnife, knife.Category)
	// With no max price the midpoint is the min price.
	assert.Equal(t, 1900.00, knife.CurrentPrice)
	assert.Len(t, knife.Sparkline, _sparklinePoints)
	assert.Equal(t, knife.CurrentPrice, knife.Sparkline[len(knife.Sparkline)-1])
}

func TestProcessor_BuildDeterministicWithFixedSeed(t *testing.T) {
	listing := []entity.ListingEntry{
		{MarketHashName: "AK-47 | Redline (Field-Tested)", MinPrice: 1500, MaxPrice: 1600, Quantity: 120},
	}

	first := NewProcessor(rand.New(rand.NewSource(9)), nopLogger{}).Build(listing, testCatalog())
	second := NewProcessor(rand.New(rand.NewSource(9)), nopLogger{}).Build(listing, testCatalog())

	assert.Equal(t, first, second)
}

func TestRank_LiquidityWeighting(t *testing.T) {
	items := []entity.TrendingItem{
		{MarketHashName: "thin", PriceChangePct: 10, Quantity: 2},
		{MarketHashName: "liquid", PriceChangePct: -10, Quantity: 500},
	}

	Rank(items)

	// Equal swing magnitude, but the liquid item carries more weight.
	assert.Equal(t, "liquid", items[0].MarketHashName)
	assert.Equal(t, "thin", items[1].MarketHashName)
	assert.InDelta(t, 10*math.Log(501), items[0].Score, 1e-9)
}

func TestRank_MagnitudeOverDirection(t *testing.T) {
	items := []entity.TrendingItem{
		{MarketHashName: "small rise", PriceChangePct: 2, Quantity: 100},
		{MarketHashName: "big drop", PriceChangePct: -15, Quantity: 100},
	}

	Rank(items)

	assert.Equal(t, "big drop", items[0].MarketHashName)
}

func TestFilterByCategory(t *testing.T) {
	items := []entity.TrendingItem{
		{MarketHashName: "AK-47 | Redline (Field-Tested)"},
		{MarketHashName: "★ Karambit | Fade (Factory New)"},
		{MarketHashName: "Desert Eagle | Blaze (Minimal Wear)"},
		{MarketHashName: "Sticker | Crown (Foil)"},
	}

	knives := FilterByCategory(items, entity.CategoryKnife)
	require.Len(t, knives, 1)
	assert.Equal(t, "★ Karambit | Fade (Factory New)", knives[0].MarketHashName)

	assert.Len(t, FilterByCategory(items, ""), 4, "empty category means no restriction")

	other := FilterByCategory(items, entity.CategoryOther)
	require.Len(t, other, 1)
	assert.Equal(t, "Sticker | Crown (Foil)", other[0].MarketHashName)
}

func TestExtractWear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entity.Wear
	}{
		{"plain", "AK-47 | Redline (Field-Tested)", entity.WearFieldTested},
		{"stattrak", "StatTrak™ AWP | Asiimov (Battle-Scarred)", entity.WearBattleScarred},
		{"vanilla knife", "★ Karambit", ""},
		{"parens not a wear", "Five-SeveN | Kami (retail)", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractWear(tc.input))
		})
	}
}
