package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marbleisles/livia-bot/internal/entities"
	"github.com/marbleisles/livia-bot/internal/rulebook"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "melee_weapons", rulebook.Slug("  Melee Weapons "))
	assert.Equal(t, "lore", rulebook.Slug("LORE"))
	assert.Equal(t, "drug_tolerance", rulebook.Slug("drug_tolerance"))
}

func TestGoverningStat(t *testing.T) {
	tests := []struct {
		skill string
		stat  entities.Stat
	}{
		{"persuasion", entities.StatMind},
		{"ranged_weapons", entities.StatMind},
		{"brawling", entities.StatBody},
		{"dance", entities.StatBody},
		{"exorcism", entities.StatSoul},
		{"clairvoyance", entities.StatSoul},
	}

	for _, tt := range tests {
		stat, ok := rulebook.GoverningStat(tt.skill)
		assert.True(t, ok, tt.skill)
		assert.Equal(t, tt.stat, stat, tt.skill)
	}
}

func TestGoverningStat_Unknown(t *testing.T) {
	_, ok := rulebook.GoverningStat("basket_weaving")
	assert.False(t, ok)
}

func TestSkillNames(t *testing.T) {
	names := rulebook.SkillNames()
	assert.Len(t, names, 12)
	assert.Equal(t, "brawling", names[0])

	for _, name := range names {
		assert.True(t, rulebook.IsSkill(name))
	}
}

func TestShopCatalog(t *testing.T) {
	price, ok := rulebook.Price("pistol")
	assert.True(t, ok)
	assert.Equal(t, 200, price)

	_, ok = rulebook.Price("cannon")
	assert.False(t, ok)

	items := rulebook.CatalogItems()
	assert.Contains(t, items, "healing_salves")
	assert.Contains(t, items, "ragged_outfit")
}

func TestOriginPerks(t *testing.T) {
	noble, ok := rulebook.PerkFor(entities.OriginNoble)
	assert.True(t, ok)
	assert.Equal(t, 1000, noble.StartingWallet)

	streetrat, ok := rulebook.PerkFor(entities.OriginStreetrat)
	assert.True(t, ok)
	assert.Equal(t, 10, streetrat.StartingWallet)

	_, ok = rulebook.PerkFor(entities.Origin("pirate"))
	assert.False(t, ok)
}
