package market

import (
	"strings"

	"github.com/skinpulse/skinpulse/internal/entity"
)

// categoryRule - keyword list for one category. Rules are evaluated in
// declaration order; the first category with a matching keyword wins, so
// knives beat everything else ("AK-47 Knife" classifies as Knife).
type categoryRule struct {
	category entity.Category
	keywords []string
}

var categoryRules = []categoryRule{
	{entity.CategoryKnife, []string{
		"knife", "karambit", "bayonet", "daggers", "falchion",
		"stiletto", "talon", "ursus", "navaja", entity.SpecialItemMarker,
	}},
	{entity.CategoryRifle, []string{
		"ak-47", "m4a4", "m4a1", "awp", "ssg 08", "aug", "sg 553",
		"famas", "galil", "scar-20", "g3sg1",
	}},
	{entity.CategoryPistol, []string{
		"glock", "usp-s", "p2000", "p250", "five-seven", "tec-9",
		"cz75", "desert eagle", "deagle", "dual berettas", "r8 revolver",
	}},
	{entity.CategorySMG, []string{
		"mp9", "mp7", "mp5", "mac-10", "ump-45", "p90", "pp-bizon",
	}},
	{entity.CategoryShotgun, []string{
		"nova", "xm1014", "sawed-off", "mag-7",
	}},
	{entity.CategoryMachineGun, []string{
		"negev", "m249",
	}},
	{entity.CategoryGloves, []string{
		"gloves", "hand wraps",
	}},
}

// Classify maps a free-text weapon or item name to its category. Matching
// is case-insensitive substring matching, total: unknown names classify as
// Other. Glove names also carry the star marker, so the explicit gloves
// keywords are checked inside the knife rule scan first via name content.
func Classify(weaponName string) entity.Category {
	name := strings.ToLower(strings.TrimSpace(weaponName))
	if name == "" {
		return entity.CategoryOther
	}

	// Starred items are knives unless the name says gloves.
	if strings.Contains(name, strings.ToLower(entity.SpecialItemMarker)) {
		if strings.Contains(name, "gloves") || strings.Contains(name, "hand wraps") {
			return entity.CategoryGloves
		}
	}

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, strings.ToLower(keyword)) {
				return rule.category
			}
		}
	}

	return entity.CategoryOther
}
