// Package rulebook holds the fixed Marble Isles game data: the skill table,
// origin perks, shop catalog, and the attribute derivation rules.
package rulebook

import (
	"sort"
	"strings"

	"github.com/marbleisles/livia-bot/internal/entities"
)

// Slug normalizes a player-supplied name to table form
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// skillToStat maps each skill to its governing stat. The table is closed:
// rolls and skill training against names outside it are rejected.
var skillToStat = map[string]entities.Stat{
	"lore":           entities.StatMind,
	"streetwise":     entities.StatMind,
	"persuasion":     entities.StatMind,
	"ranged_weapons": entities.StatMind,

	"melee_weapons": entities.StatBody,
	"dance":         entities.StatBody,
	"evasion":       entities.StatBody,
	"brawling":      entities.StatBody,

	"religion":       entities.StatSoul,
	"clairvoyance":   entities.StatSoul,
	"drug_tolerance": entities.StatSoul,
	"exorcism":       entities.StatSoul,
}

// GoverningStat returns the stat a skill keys off
func GoverningStat(skill string) (entities.Stat, bool) {
	stat, ok := skillToStat[skill]
	return stat, ok
}

// IsSkill reports whether a name is in the skill table
func IsSkill(skill string) bool {
	_, ok := skillToStat[skill]
	return ok
}

// SkillNames returns all skill names sorted alphabetically
func SkillNames() []string {
	names := make([]string, 0, len(skillToStat))
	for name := range skillToStat {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
