package entities

import "strings"

// Stat is one of the three core attributes
type Stat string

const (
	StatMind Stat = "Mind"
	StatBody Stat = "Body"
	StatSoul Stat = "Soul"
)

// Stats returns the three core stats in display order
func Stats() []Stat {
	return []Stat{StatMind, StatBody, StatSoul}
}

// ParseStat converts a string to a Stat
func ParseStat(s string) (Stat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mind":
		return StatMind, true
	case "body":
		return StatBody, true
	case "soul":
		return StatSoul, true
	default:
		return "", false
	}
}

// Origin is a character's background category
type Origin string

const (
	OriginNoble     Origin = "noble"
	OriginCitizen   Origin = "citizen"
	OriginCountry   Origin = "country"
	OriginStreetrat Origin = "streetrat"
)

// ParseOrigin converts a string to an Origin
func ParseOrigin(s string) (Origin, bool) {
	switch Origin(strings.ToLower(strings.TrimSpace(s))) {
	case OriginNoble:
		return OriginNoble, true
	case OriginCitizen:
		return OriginCitizen, true
	case OriginCountry:
		return OriginCountry, true
	case OriginStreetrat:
		return OriginStreetrat, true
	default:
		return "", false
	}
}

// WeaponChoice is a streetrat's starting weapon
type WeaponChoice string

const (
	WeaponPistol WeaponChoice = "pistol"
	WeaponDagger WeaponChoice = "dagger"
)

// ParseWeaponChoice converts a string to a WeaponChoice
func ParseWeaponChoice(s string) (WeaponChoice, bool) {
	switch WeaponChoice(strings.ToLower(strings.TrimSpace(s))) {
	case WeaponPistol:
		return WeaponPistol, true
	case WeaponDagger:
		return WeaponDagger, true
	default:
		return "", false
	}
}
