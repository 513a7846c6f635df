package entity

// TrendingItem - read-only view combining a listing entry with matched
// catalog metadata, ranked by volatility and liquidity.
type TrendingItem struct {
	MarketHashName string    `json:"market_hash_name"`
	Name           string    `json:"name"`
	Wear           Wear      `json:"wear,omitempty"`
	StatTrak       bool      `json:"stattrak"`
	Souvenir       bool      `json:"souvenir"`
	Category       Category  `json:"category"`
	Rarity         string    `json:"rarity,omitempty"`
	RarityColor    string    `json:"rarityColor,omitempty"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CurrentPrice   float64   `json:"current_price"`
	MinPrice       float64   `json:"min_price"`
	MaxPrice       float64   `json:"max_price"`
	Quantity       int       `json:"quantity"`
	PriceChangePct float64   `json:"price_change_pct"`
	Sparkline      []float64 `json:"sparkline"`
	Score          float64   `json:"score"`
}
