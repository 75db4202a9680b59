package rulebook

import "github.com/marbleisles/livia-bot/internal/entities"

// ItemGrant is a starting inventory grant from an origin
type ItemGrant struct {
	Item string
	Qty  int
}

// OriginPerk describes what an origin grants at character creation.
// Every character starts with an empty skill sheet; origins shape the
// wallet and starting gear only.
type OriginPerk struct {
	StartingWallet int
	Items          []ItemGrant
}

// originPerks is the origin balance table
var originPerks = map[entities.Origin]OriginPerk{
	entities.OriginNoble: {
		StartingWallet: 1000,
		Items:          []ItemGrant{{Item: "formal_outfit", Qty: 1}},
	},
	entities.OriginCitizen: {
		StartingWallet: 400,
		Items:          []ItemGrant{{Item: "common_outfit", Qty: 1}},
	},
	entities.OriginCountry: {
		StartingWallet: 400,
		Items:          []ItemGrant{{Item: "work_outfit", Qty: 1}},
	},
	entities.OriginStreetrat: {
		StartingWallet: 10,
		Items:          []ItemGrant{{Item: "ragged_outfit", Qty: 1}},
	},
}

// PerkFor returns the origin perk table entry
func PerkFor(origin entities.Origin) (OriginPerk, bool) {
	perk, ok := originPerks[origin]
	return perk, ok
}
