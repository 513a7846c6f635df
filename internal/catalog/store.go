package catalog

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
)

const (
	_catalogKey    = "catalog:skins"
	_schemaVersion = 2
)

// envelope wraps the stored item list with a schema version so older
// payloads can be migrated once at load instead of every consumer checking
// field aliases.
type envelope struct {
	Version int               `json:"version"`
	Items   []entity.SkinItem `json:"items"`
}

// legacySkin is the pre-envelope stored shape: a bare array of records with
// snake_case field names.
type legacySkin struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	WeaponName      string   `json:"weapon_name"`
	PatternName     string   `json:"pattern_name"`
	RarityName      string   `json:"rarity_name"`
	RarityColor     string   `json:"rarity_color"`
	MinFloat        float64  `json:"min_float"`
	MaxFloat        float64  `json:"max_float"`
	WearNames       []string `json:"wear_names"`
	StatTrak        bool     `json:"stattrak"`
	Souvenir        bool     `json:"souvenir"`
	CrateNames      []string `json:"crate_names"`
	CollectionNames []string `json:"collection_names"`
	ImageURL        string   `json:"image_url"`
}

// Store persists the canonical item list in the key-value store.
type Store struct {
	kv  domain.KeyValueStore
	log domain.Logger
}

func NewStore(kv domain.KeyValueStore, log domain.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log,
	}
}

// Save writes the item list under the current schema version.
func (s *Store) Save(ctx context.Context, items []entity.SkinItem) error {
	payload, err := json.Marshal(envelope{Version: _schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := s.kv.Set(ctx, _catalogKey, string(payload), 0); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	return nil
}

// Load reads the item list, migrating legacy payloads in place. The
// category field is recomputed on every load and never trusted from
// storage.
func (s *Store) Load(ctx context.Context) ([]entity.SkinItem, error) {
	raw, err := s.kv.Get(ctx, _catalogKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	items, migrated, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range items {
		items[i].Category = deriveCategory(items[i])
	}

	if migrated {
		s.log.Info("catalog migrated to current schema", "items", len(items))
		if err := s.Save(ctx, items); err != nil {
			s.log.Warn("persist migrated catalog", "error", err)
		}
	}

	return items, nil
}

func decode(raw string) (items []entity.SkinItem, migrated bool, err error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version == _schemaVersion {
		return env.Items, false, nil
	}

	var legacy []legacySkin
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return nil, false, fmt.Errorf("unmarshal legacy catalog: %w", err)
	}

	items = make([]entity.SkinItem, len(legacy))
	for i, old := range legacy {
		wears := make([]entity.Wear, 0, len(old.WearNames))
		for _, name := range old.WearNames {
			wears = append(wears, entity.Wear(name))
		}

		items[i] = entity.SkinItem{
			ID:          old.ID,
			Name:        old.Name,
			Weapon:      old.WeaponName,
			Pattern:     old.PatternName,
			Rarity:      old.RarityName,
			RarityColor: old.RarityColor,
			MinFloat:    old.MinFloat,
			MaxFloat:    old.MaxFloat,
			Wears:       wears,
			StatTrak:    old.StatTrak,
			Souvenir:    old.Souvenir,
			Crates:      old.CrateNames,
			Collections: old.CollectionNames,
			ImageURL:    old.ImageURL,
		}
	}

	return items, true, nil
}
