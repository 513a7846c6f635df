package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/market"
)

// RawSkin - a skin record as the metadata API returns it.
type RawSkin struct {
	ID          string     `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Weapon      NamedRef   `json:"weapon"`
	Category    NamedRef   `json:"category"`
	Pattern     NamedRef   `json:"pattern"`
	MinFloat    float64    `json:"min_float" validate:"gte=0,lte=1"`
	MaxFloat    float64    `json:"max_float" validate:"gte=0,lte=1"`
	Rarity      Rarity     `json:"rarity"`
	Image       string     `json:"image"`
	Team        NamedRef   `json:"team"`
	Wears       []NamedRef `json:"wears"`
	StatTrak    bool       `json:"stattrak"`
	Souvenir    bool       `json:"souvenir"`
	Crates      []NamedRef `json:"crates"`
	Collections []NamedRef `json:"collections"`
}

type NamedRef struct {
	Name string `json:"name"`
}

type Rarity struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Transformer struct {
	validate *validator.Validate
}

func NewTransformer() *Transformer {
	return &Transformer{
		validate: validator.New(),
	}
}

// Transform validates a raw record and maps it into the canonical item.
// The category is always re-derived from the weapon name: the upstream
// category field is unreliable for special items.
func (t *Transformer) Transform(raw RawSkin) (entity.SkinItem, error) {
	if err := t.validate.Struct(raw); err != nil {
		return entity.SkinItem{}, fmt.Errorf("validate skin record: %w", err)
	}

	wears := make([]entity.Wear, 0, len(raw.Wears))
	for _, wear := range raw.Wears {
		wears = append(wears, entity.Wear(wear.Name))
	}

	item := entity.SkinItem{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Weapon:      raw.Weapon.Name,
		Pattern:     raw.Pattern.Name,
		Rarity:      raw.Rarity.Name,
		RarityColor: raw.Rarity.Color,
		MinFloat:    raw.MinFloat,
		MaxFloat:    raw.MaxFloat,
		Wears:       wears,
		StatTrak:    raw.StatTrak,
		Souvenir:    raw.Souvenir,
		Crates:      names(raw.Crates),
		Collections: names(raw.Collections),
		ImageURL:    raw.Image,
	}
	item.Category = deriveCategory(item)

	return item, nil
}

// TransformAll maps every valid record, skipping and counting invalid ones.
func (t *Transformer) TransformAll(raws []RawSkin) ([]entity.SkinItem, int) {
	items := make([]entity.SkinItem, 0, len(raws))
	skipped := 0

	for _, raw := range raws {
		item, err := t.Transform(raw)
		if err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}

	return items, skipped
}

// deriveCategory classifies from the weapon name when one exists. Special
// items classify from the full starred name instead: their weapon field
// alone may carry no recognizable keyword.
func deriveCategory(item entity.SkinItem) entity.Category {
	if item.Weapon == "" || item.IsSpecial() {
		return market.Classify(item.Name)
	}
	return market.Classify(item.Weapon)
}

func names(refs []NamedRef) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.Name
	}
	return out
}
