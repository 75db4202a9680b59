package rulebook

import (
	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
)

// Stat spread: every stat starts at the baseline, the primary pick is raised
// to 5 and the secondary to 3 (the 5/3/1 rule). Resource maxima are stat × 2.
const (
	BaselineStatValue  = 1
	PrimaryStatValue   = 5
	SecondaryStatValue = 3

	ResourceMaxPerStat = 2
)

// DeriveAttributes computes the three core stat values from the player's
// primary/secondary picks and origin. weapon must be set iff origin is
// streetrat.
func DeriveAttributes(primary, secondary entities.Stat, origin entities.Origin, weapon entities.WeaponChoice) (map[entities.Stat]int, error) {
	if primary == secondary {
		return nil, liviaerr.InvalidAttributeSelection("primary and secondary stats must be different")
	}

	if _, ok := PerkFor(origin); !ok {
		return nil, liviaerr.InvalidOriginChoicef("unknown origin '%s'", origin)
	}

	if origin == entities.OriginStreetrat {
		if weapon != entities.WeaponPistol && weapon != entities.WeaponDagger {
			return nil, liviaerr.InvalidOriginChoice("streetrat origin requires a starting weapon: pistol or dagger")
		}
	} else if weapon != "" {
		return nil, liviaerr.InvalidOriginChoicef("origin '%s' does not grant a starting weapon", origin)
	}

	stats := map[entities.Stat]int{
		entities.StatMind: BaselineStatValue,
		entities.StatBody: BaselineStatValue,
		entities.StatSoul: BaselineStatValue,
	}
	stats[primary] = PrimaryStatValue
	stats[secondary] = SecondaryStatValue

	return stats, nil
}

// MaxPoolsFor derives the starting resource pools from stat values
func MaxPoolsFor(stats map[entities.Stat]int) entities.Pools {
	maxSanity := stats[entities.StatMind] * ResourceMaxPerStat
	maxHealth := stats[entities.StatBody] * ResourceMaxPerStat
	maxSpirit := stats[entities.StatSoul] * ResourceMaxPerStat

	return entities.Pools{
		Health: entities.Pool{Current: maxHealth, Max: maxHealth},
		Sanity: entities.Pool{Current: maxSanity, Max: maxSanity},
		Spirit: entities.Pool{Current: maxSpirit, Max: maxSpirit},
	}
}
