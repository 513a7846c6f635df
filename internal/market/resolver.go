package market

import (
	"sort"
	"strings"

	"github.com/skinpulse/skinpulse/internal/entity"
)

const (
	// StatTrakMarker and SouvenirMarker are the variant prefixes used in
	// canonical market hash names.
	StatTrakMarker = "StatTrak™"
	SouvenirMarker = "Souvenir"

	patternSeparator = " | "
)

// Request - a price lookup for one skin variant.
type Request struct {
	Name     string
	Wear     entity.Wear
	StatTrak bool
	Souvenir bool
}

// Quote - a resolved price. Approximate quotes come from a related but
// different market hash name than requested; MatchedName reports which one.
type Quote struct {
	entity.PriceQuote
	MatchedName string
	Approximate bool
}

// resolveStrategy - one step of the resolution chain. Returns nil when the
// strategy has nothing to offer.
type resolveStrategy func(prices entity.PriceMap, req Request) *Quote

// Resolution order is fixed: exact name, then wear retries, then the
// pattern fallback for starred items, then StatTrak relaxation.
var resolveStrategies = []resolveStrategy{
	exactMatch,
	wearFallback,
	specialFallback,
	statTrakRelaxed,
}

// Resolve finds the best available quote for the request. Missing input
// short-circuits to nil; no strategy panics or errors.
func Resolve(prices entity.PriceMap, req Request) *Quote {
	if len(prices) == 0 || strings.TrimSpace(req.Name) == "" {
		return nil
	}

	for _, strategy := range resolveStrategies {
		if quote := strategy(prices, req); quote != nil {
			return quote
		}
	}

	return nil
}

// MarketHashName builds the canonical identifier for the request. StatTrak
// wins over Souvenir when both flags are set. Appending the wear suffix is
// idempotent: a name that already carries it is left alone.
func MarketHashName(req Request) string {
	name := req.Name

	if req.StatTrak {
		name = StatTrakMarker + " " + name
	} else if req.Souvenir {
		name = SouvenirMarker + " " + name
	}

	if req.Wear != "" && !strings.HasSuffix(name, wearSuffix(req.Wear)) {
		name += wearSuffix(req.Wear)
	}

	return name
}

func wearSuffix(wear entity.Wear) string {
	return " (" + string(wear) + ")"
}

func exactMatch(prices entity.PriceMap, req Request) *Quote {
	name := MarketHashName(req)
	if quote, ok := prices[name]; ok {
		return &Quote{PriceQuote: quote, MatchedName: name}
	}
	return nil
}

// wearFallback retries the exact lookup across the wear tiers when the
// caller did not name one.
func wearFallback(prices entity.PriceMap, req Request) *Quote {
	if req.Wear != "" {
		return nil
	}

	for _, wear := range entity.WearFallbackOrder {
		retry := req
		retry.Wear = wear
		if quote := exactMatch(prices, retry); quote != nil {
			return quote
		}
	}

	return nil
}

// specialFallback scans the full key set for starred items whose canonical
// name is absent from the feed, which happens for knives and gloves with
// phase or pattern suffixes the metadata source does not carry. Matches are
// flagged approximate.
func specialFallback(prices entity.PriceMap, req Request) *Quote {
	if !entity.IsSpecialName(req.Name) {
		return nil
	}
	return scanSpecialKeys(prices, req, req.StatTrak)
}

// statTrakRelaxed reruns the special scan without the StatTrak requirement.
// Many starred items have no StatTrak listing at all; the normal-item price
// is an accepted approximation.
func statTrakRelaxed(prices entity.PriceMap, req Request) *Quote {
	if !entity.IsSpecialName(req.Name) || !req.StatTrak {
		return nil
	}
	return scanSpecialKeys(prices, req, false)
}

func scanSpecialKeys(prices entity.PriceMap, req Request, wantStatTrak bool) *Quote {
	base, pattern, hasPattern := strings.Cut(req.Name, patternSeparator)
	base = strings.TrimSpace(base)

	var candidates []string
	for key := range prices {
		if strings.Contains(key, StatTrakMarker) != wantStatTrak {
			continue
		}
		if req.Wear != "" && !strings.Contains(key, wearSuffix(req.Wear)) {
			continue
		}

		if hasPattern {
			if keyMatchesPattern(key, base, strings.TrimSpace(pattern)) {
				candidates = append(candidates, key)
			}
			continue
		}

		// Vanilla starred item: match the bare weapon, excluding any
		// patterned variants.
		if keyMatchesVanilla(key, base) {
			candidates = append(candidates, key)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	// Map iteration order is random; sort so repeated calls pick the same
	// approximation.
	sort.Strings(candidates)
	matched := candidates[0]
	quote := prices[matched]

	return &Quote{PriceQuote: quote, MatchedName: matched, Approximate: true}
}

func keyMatchesPattern(key, base, pattern string) bool {
	prefix := base + patternSeparator + pattern
	return strings.HasPrefix(stripVariantMarkers(key), prefix)
}

func keyMatchesVanilla(key, base string) bool {
	stripped := stripVariantMarkers(key)
	return strings.HasPrefix(stripped, base) && !strings.Contains(stripped, "|")
}

// stripVariantMarkers removes the StatTrak/Souvenir prefix so base-name
// prefix checks work on variant keys like "★ StatTrak™ Bayonet | Doppler".
func stripVariantMarkers(key string) string {
	stripped := strings.ReplaceAll(key, StatTrakMarker+" ", "")
	stripped = strings.TrimPrefix(stripped, SouvenirMarker+" ")
	return stripped
}
