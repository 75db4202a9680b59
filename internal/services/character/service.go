package character

import (
	"context"
	"strings"

	"github.com/marbleisles/livia-bot/internal/dice"
	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/repositories/characters"
	"github.com/marbleisles/livia-bot/internal/rulebook"
	"github.com/marbleisles/livia-bot/internal/storage"
)

// Service defines the character service interface
type Service interface {
	// Create creates a new character with derived attributes and starting gear
	Create(ctx context.Context, input *CreateInput) (*entities.Character, error)

	// Get retrieves a player's character
	Get(ctx context.Context, guildID, ownerID string) (*entities.Character, error)

	// AddSkill raises a skill's rank by amount
	AddSkill(ctx context.Context, guildID, ownerID, skill string, amount int) (*AddSkillResult, error)

	// Roll resolves a skill check: d20 + skill rank + governing stat
	Roll(ctx context.Context, guildID, ownerID, skill string) (*RollResult, error)

	// ApplyDamage subtracts from a resource pool, clamped at 0
	ApplyDamage(ctx context.Context, guildID, ownerID string, kind entities.PoolKind, amount int) (*DeltaResult, error)

	// ApplyHeal adds to a resource pool, clamped at its max
	ApplyHeal(ctx context.Context, guildID, ownerID string, kind entities.PoolKind, amount int) (*DeltaResult, error)
}

// CreateInput contains all data needed to create a character
type CreateInput struct {
	GuildID   string
	OwnerID   string
	Name      string
	Primary   entities.Stat
	Secondary entities.Stat
	Origin    entities.Origin
	Weapon    entities.WeaponChoice // required iff Origin is streetrat
}

// AddSkillResult reports the outcome of skill training
type AddSkillResult struct {
	Character *entities.Character
	Skill     string
	NewRank   int
}

// RollResult exposes the full breakdown of a skill check
type RollResult struct {
	Skill     string
	Stat      entities.Stat
	Die       int
	SkillRank int
	StatValue int
	Total     int
	IsCrit    bool
	IsFumble  bool
}

// DeltaResult reports the outcome of a damage or heal
type DeltaResult struct {
	Character *entities.Character
	Kind      entities.PoolKind
	Applied   int
	Current   int
	Max       int

	// Depleted is set when damage drives the pool to 0. The session layer
	// decides what incapacitation means; this service only surfaces it.
	Depleted bool
}

// service implements the Service interface
type service struct {
	store       *storage.Store
	roller      dice.Roller
	idGenerator characters.IDGenerator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Store       *storage.Store         // Required
	Roller      dice.Roller            // Optional, defaults to the random roller
	IDGenerator characters.IDGenerator // Optional, defaults to UUIDs
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Store == nil {
		panic("store is required")
	}

	svc := &service{
		store:       cfg.Store,
		roller:      cfg.Roller,
		idGenerator: cfg.IDGenerator,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.idGenerator == nil {
		svc.idGenerator = characters.NewUUIDGenerator()
	}

	return svc
}

// Create creates a new character
func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.Character, error) {
	if input == nil {
		return nil, liviaerr.InvalidArgument("create input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, liviaerr.InvalidArgument("character name is required")
	}
	if input.GuildID == "" || input.OwnerID == "" {
		return nil, liviaerr.InvalidArgument("guild and owner IDs are required")
	}

	stats, err := rulebook.DeriveAttributes(input.Primary, input.Secondary, input.Origin, input.Weapon)
	if err != nil {
		return nil, err
	}

	perk, _ := rulebook.PerkFor(input.Origin)

	char := &entities.Character{
		ID:              s.idGenerator.NewID(),
		OwnerID:         input.OwnerID,
		GuildID:         input.GuildID,
		Name:            strings.TrimSpace(input.Name),
		PrimaryStat:     input.Primary,
		SecondaryStat:   input.Secondary,
		Origin:          input.Origin,
		StreetratWeapon: input.Weapon,
		Stats:           stats,
		Skills:          make(map[string]int),
		Pools:           rulebook.MaxPoolsFor(stats),
		Wallet:          perk.StartingWallet,
		Inventory:       make(map[string]int),
	}

	for _, grant := range perk.Items {
		char.AddItem(grant.Item, grant.Qty)
	}
	if input.Origin == entities.OriginStreetrat {
		char.AddItem(string(input.Weapon), 1)
	}

	if err := s.store.Create(ctx, char); err != nil {
		return nil, liviaerr.Wrap(err, "failed to save character").
			WithMeta("owner_id", char.OwnerID).
			WithMeta("guild_id", char.GuildID).
			WithMeta("character_name", char.Name)
	}

	return char, nil
}

// Get retrieves a player's character
func (s *service) Get(ctx context.Context, guildID, ownerID string) (*entities.Character, error) {
	if guildID == "" || ownerID == "" {
		return nil, liviaerr.InvalidArgument("guild and owner IDs are required")
	}

	char, err := s.store.Get(ctx, guildID, ownerID)
	if err != nil {
		return nil, liviaerr.Wrapf(err, "failed to get character for player '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return char, nil
}

// AddSkill raises a skill's rank by amount
func (s *service) AddSkill(ctx context.Context, guildID, ownerID, skill string, amount int) (*AddSkillResult, error) {
	name := rulebook.Slug(skill)
	if !rulebook.IsSkill(name) {
		return nil, liviaerr.UnknownSkillf("unknown skill '%s', try: %s", name, strings.Join(rulebook.SkillNames(), ", "))
	}
	if amount <= 0 {
		return nil, liviaerr.InvalidAmountf("skill points to add must be positive, got %d", amount)
	}

	result := &AddSkillResult{Skill: name}
	char, err := s.store.Update(ctx, guildID, ownerID, func(c *entities.Character) error {
		result.NewRank = c.AddSkillRank(name, amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Character = char
	return result, nil
}

// Roll resolves a skill check without mutating the character
func (s *service) Roll(ctx context.Context, guildID, ownerID, skill string) (*RollResult, error) {
	name := rulebook.Slug(skill)
	stat, ok := rulebook.GoverningStat(name)
	if !ok {
		return nil, liviaerr.UnknownSkillf("unknown skill '%s', try: %s", name, strings.Join(rulebook.SkillNames(), ", "))
	}

	char, err := s.store.Get(ctx, guildID, ownerID)
	if err != nil {
		return nil, err
	}

	roll, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, liviaerr.Wrap(err, "failed to roll d20")
	}

	die := roll.Rolls[0]
	rank := char.SkillRank(name)
	statValue := char.StatValue(stat)

	return &RollResult{
		Skill:     name,
		Stat:      stat,
		Die:       die,
		SkillRank: rank,
		StatValue: statValue,
		Total:     die + rank + statValue,
		IsCrit:    roll.IsCrit,
		IsFumble:  roll.IsFumble,
	}, nil
}

// ApplyDamage subtracts from a resource pool, clamped at 0
func (s *service) ApplyDamage(ctx context.Context, guildID, ownerID string, kind entities.PoolKind, amount int) (*DeltaResult, error) {
	return s.applyDelta(ctx, guildID, ownerID, kind, amount, true)
}

// ApplyHeal adds to a resource pool, clamped at its max
func (s *service) ApplyHeal(ctx context.Context, guildID, ownerID string, kind entities.PoolKind, amount int) (*DeltaResult, error) {
	return s.applyDelta(ctx, guildID, ownerID, kind, amount, false)
}

func (s *service) applyDelta(ctx context.Context, guildID, ownerID string, kind entities.PoolKind, amount int, damage bool) (*DeltaResult, error) {
	if _, ok := entities.ParsePoolKind(string(kind)); !ok {
		return nil, liviaerr.InvalidArgumentf("unknown resource pool '%s'", kind)
	}
	if amount <= 0 {
		return nil, liviaerr.InvalidAmountf("amount must be positive, got %d", amount)
	}

	result := &DeltaResult{Kind: kind}
	char, err := s.store.Update(ctx, guildID, ownerID, func(c *entities.Character) error {
		pool := c.Pool(kind)
		if damage {
			result.Applied = pool.Damage(amount)
			result.Depleted = pool.Depleted()
		} else {
			result.Applied = pool.Heal(amount)
		}
		result.Current = pool.Current
		result.Max = pool.Max
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Character = char
	return result, nil
}
