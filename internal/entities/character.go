package entities

import (
	"fmt"
	"sort"
	"strings"
)

// Character is a player's character in the Marble Isles
type Character struct {
	ID              string
	OwnerID         string // Discord user ID
	GuildID         string // Discord guild the character belongs to
	Name            string
	PrimaryStat     Stat
	SecondaryStat   Stat
	Origin          Origin
	StreetratWeapon WeaponChoice // set iff Origin is streetrat
	Stats           map[Stat]int
	Skills          map[string]int // skill name -> rank
	Pools           Pools
	Wallet          int
	Inventory       map[string]int // item name -> quantity
}

// StatValue returns the value of a core stat
func (c *Character) StatValue(stat Stat) int {
	if c.Stats == nil {
		return 0
	}
	return c.Stats[stat]
}

// SkillRank returns the rank of a skill, 0 if never trained
func (c *Character) SkillRank(skill string) int {
	if c.Skills == nil {
		return 0
	}
	return c.Skills[skill]
}

// AddSkillRank increments (or initializes) a skill's rank
func (c *Character) AddSkillRank(skill string, amount int) int {
	if c.Skills == nil {
		c.Skills = make(map[string]int)
	}
	c.Skills[skill] += amount
	return c.Skills[skill]
}

// AddItem increments an inventory quantity
func (c *Character) AddItem(item string, qty int) int {
	if c.Inventory == nil {
		c.Inventory = make(map[string]int)
	}
	c.Inventory[item] += qty
	return c.Inventory[item]
}

// ItemCount returns the quantity of an item in the inventory
func (c *Character) ItemCount(item string) int {
	if c.Inventory == nil {
		return 0
	}
	return c.Inventory[item]
}

// Pool returns the resource pool for the given kind
func (c *Character) Pool(kind PoolKind) *Pool {
	return c.Pools.Get(kind)
}

// SkillsString renders trained skills as "name rank, ..." sorted by name
func (c *Character) SkillsString() string {
	names := make([]string, 0, len(c.Skills))
	for name, rank := range c.Skills {
		if rank > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "(none)"
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d", name, c.Skills[name])
	}
	return strings.Join(parts, ", ")
}

// InventoryString renders the inventory as "item×qty, ..." sorted by item
func (c *Character) InventoryString() string {
	names := make([]string, 0, len(c.Inventory))
	for name, qty := range c.Inventory {
		if qty > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "(empty)"
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s×%d", name, c.Inventory[name])
	}
	return strings.Join(parts, ", ")
}

// Clone creates a deep copy of the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Stats != nil {
		clone.Stats = make(map[Stat]int, len(c.Stats))
		for k, v := range c.Stats {
			clone.Stats[k] = v
		}
	}
	if c.Skills != nil {
		clone.Skills = make(map[string]int, len(c.Skills))
		for k, v := range c.Skills {
			clone.Skills[k] = v
		}
	}
	if c.Inventory != nil {
		clone.Inventory = make(map[string]int, len(c.Inventory))
		for k, v := range c.Inventory {
			clone.Inventory[k] = v
		}
	}

	return &clone
}
