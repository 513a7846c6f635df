package market

import (
	"testing"

	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entity.Category
	}{
		{"karambit", "★ Karambit | Doppler", entity.CategoryKnife},
		{"bayonet", "Bayonet", entity.CategoryKnife},
		{"knife uppercase", "BUTTERFLY KNIFE", entity.CategoryKnife},
		{"rifle", "AK-47 | Redline", entity.CategoryRifle},
		{"awp is rifle", "AWP | Asiimov", entity.CategoryRifle},
		{"pistol", "Desert Eagle | Blaze", entity.CategoryPistol},
		{"smg", "MAC-10 | Neon Rider", entity.CategorySMG},
		{"shotgun", "XM1014 | Tranquility", entity.CategoryShotgun},
		{"machine gun", "Negev | Mjölnir", entity.CategoryMachineGun},
		{"gloves", "★ Specialist Gloves | Crimson Kimono", entity.CategoryGloves},
		{"hand wraps", "★ Hand Wraps | Cobalt Skulls", entity.CategoryGloves},
		{"unknown", "Sticker | Crown (Foil)", entity.CategoryOther},
		{"empty", "", entity.CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.input))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// The knife rule runs before the rifle rule, so a name carrying both
	// keywords resolves as Knife.
	assert.Equal(t, entity.CategoryKnife, Classify("AK-47 Knife"))
}
