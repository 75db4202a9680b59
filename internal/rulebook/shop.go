package rulebook

import "sort"

// CurrencyName is the Marble Isles currency
const CurrencyName = "Doubloons"

// catalog maps item name to unit price in doubloons
var catalog = map[string]int{
	"formal_outfit":  120,
	"common_outfit":  40,
	"work_outfit":    60,
	"ragged_outfit":  10,
	"pistol":         200, // 1d6
	"dagger":         80,  // 1d6
	"healing_salves": 30,
}

// Price returns the unit price of a shop item
func Price(item string) (int, bool) {
	price, ok := catalog[item]
	return price, ok
}

// CatalogItems returns all shop item names sorted alphabetically
func CatalogItems() []string {
	items := make([]string, 0, len(catalog))
	for item := range catalog {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
