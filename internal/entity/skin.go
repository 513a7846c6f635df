package entity

import "strings"

// Wear - one of the five fixed cosmetic condition tiers.
type Wear string

const (
	WearFactoryNew    Wear = "Factory New"
	WearMinimalWear   Wear = "Minimal Wear"
	WearFieldTested   Wear = "Field-Tested"
	WearWellWorn      Wear = "Well-Worn"
	WearBattleScarred Wear = "Battle-Scarred"
)

// WearFallbackOrder is the order the resolver retries wear conditions in
// when the caller did not specify one. Field-Tested goes first as the most
// commonly listed tier.
var WearFallbackOrder = []Wear{
	WearFieldTested,
	WearMinimalWear,
	WearFactoryNew,
	WearWellWorn,
	WearBattleScarred,
}

// AllWears - every wear tier, best condition first.
var AllWears = []Wear{
	WearFactoryNew,
	WearMinimalWear,
	WearFieldTested,
	WearWellWorn,
	WearBattleScarred,
}

// Category - weapon category.
type Category string

const (
	CategoryKnife      Category = "Knife"
	CategoryRifle      Category = "Rifle"
	CategoryPistol     Category = "Pistol"
	CategorySMG        Category = "SMG"
	CategoryShotgun    Category = "Shotgun"
	CategoryMachineGun Category = "Machine Gun"
	CategoryGloves     Category = "Gloves"
	CategoryOther      Category = "Other"
)

// SpecialItemMarker prefixes knife and glove names on the market.
const SpecialItemMarker = "★"

// SkinItem - canonical catalog entry for a single skin.
type SkinItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Weapon      string   `json:"weapon"`
	Category    Category `json:"category"`
	Pattern     string   `json:"pattern,omitempty"`
	Rarity      string   `json:"rarity"`
	RarityColor string   `json:"rarityColor,omitempty"`
	MinFloat    float64  `json:"minFloat"`
	MaxFloat    float64  `json:"maxFloat"`
	Wears       []Wear   `json:"wears,omitempty"`
	StatTrak    bool     `json:"stattrak"`
	Souvenir    bool     `json:"souvenir"`
	Crates      []string `json:"crates,omitempty"`
	Collections []string `json:"collections,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// IsSpecialName reports whether a name denotes a knife or glove variant,
// marked with the star prefix on the market.
func IsSpecialName(name string) bool {
	return strings.HasPrefix(name, SpecialItemMarker)
}

// IsSpecial reports whether the item is a knife or glove variant.
func (s *SkinItem) IsSpecial() bool {
	return IsSpecialName(s.Name)
}
