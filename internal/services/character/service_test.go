package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/marbleisles/livia-bot/internal/dice"
	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/repositories/characters"
	mockcharacters "github.com/marbleisles/livia-bot/internal/repositories/characters/mock"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
	"github.com/marbleisles/livia-bot/internal/storage"
)

type CharacterServiceSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *dice.MockRoller
	service characterService.Service
}

func (s *CharacterServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = dice.NewMockRoller()

	store := storage.NewStore(&storage.StoreConfig{
		Repository: characters.NewInMemoryRepository(),
	})
	s.service = characterService.NewService(&characterService.ServiceConfig{
		Store:  store,
		Roller: s.roller,
	})
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceSuite))
}

func (s *CharacterServiceSuite) createNoble() *entities.Character {
	char, err := s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "Livia",
		Primary:   entities.StatMind,
		Secondary: entities.StatBody,
		Origin:    entities.OriginNoble,
	})
	s.Require().NoError(err)
	return char
}

func (s *CharacterServiceSuite) TestCreate_NobleStartingState() {
	char := s.createNoble()

	s.Equal(5, char.StatValue(entities.StatMind))
	s.Equal(3, char.StatValue(entities.StatBody))
	s.Equal(1, char.StatValue(entities.StatSoul))

	s.Equal(entities.Pool{Current: 10, Max: 10}, char.Pools.Sanity)
	s.Equal(entities.Pool{Current: 6, Max: 6}, char.Pools.Health)
	s.Equal(entities.Pool{Current: 2, Max: 2}, char.Pools.Spirit)

	s.Equal(1000, char.Wallet)
	s.Equal(1, char.ItemCount("formal_outfit"))
	s.Empty(char.Skills)
	s.NotEmpty(char.ID)
}

func (s *CharacterServiceSuite) TestCreate_StreetratGetsWeapon() {
	char, err := s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-2",
		Name:      "Rook",
		Primary:   entities.StatBody,
		Secondary: entities.StatSoul,
		Origin:    entities.OriginStreetrat,
		Weapon:    entities.WeaponDagger,
	})
	s.Require().NoError(err)

	s.Equal(10, char.Wallet)
	s.Equal(1, char.ItemCount("ragged_outfit"))
	s.Equal(1, char.ItemCount("dagger"))
}

func (s *CharacterServiceSuite) TestCreate_SecondCharacterRejected() {
	s.createNoble()

	_, err := s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "Another",
		Primary:   entities.StatSoul,
		Secondary: entities.StatMind,
		Origin:    entities.OriginCitizen,
	})
	s.Require().Error(err)
	s.True(liviaerr.IsAlreadyExists(err))
}

func (s *CharacterServiceSuite) TestCreate_InvalidSelections() {
	_, err := s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "Livia",
		Primary:   entities.StatMind,
		Secondary: entities.StatMind,
		Origin:    entities.OriginNoble,
	})
	s.Equal(liviaerr.CodeInvalidAttributeSelection, liviaerr.GetCode(err))

	_, err = s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "Livia",
		Primary:   entities.StatMind,
		Secondary: entities.StatBody,
		Origin:    entities.OriginStreetrat,
	})
	s.Equal(liviaerr.CodeInvalidOriginChoice, liviaerr.GetCode(err))

	_, err = s.service.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "",
		Primary:   entities.StatMind,
		Secondary: entities.StatBody,
		Origin:    entities.OriginNoble,
	})
	s.Equal(liviaerr.CodeInvalidArgument, liviaerr.GetCode(err))
}

func (s *CharacterServiceSuite) TestAddSkill() {
	s.createNoble()

	result, err := s.service.AddSkill(s.ctx, "guild-1", "owner-1", "Persuasion", 2)
	s.Require().NoError(err)
	s.Equal("persuasion", result.Skill)
	s.Equal(2, result.NewRank)

	result, err = s.service.AddSkill(s.ctx, "guild-1", "owner-1", "persuasion", 2)
	s.Require().NoError(err)
	s.Equal(4, result.NewRank)

	char, err := s.service.Get(s.ctx, "guild-1", "owner-1")
	s.Require().NoError(err)
	s.Equal(4, char.SkillRank("persuasion"))
}

func (s *CharacterServiceSuite) TestAddSkill_Validation() {
	s.createNoble()

	_, err := s.service.AddSkill(s.ctx, "guild-1", "owner-1", "basket_weaving", 1)
	s.True(liviaerr.IsUnknownSkill(err))

	_, err = s.service.AddSkill(s.ctx, "guild-1", "owner-1", "lore", 0)
	s.True(liviaerr.IsInvalidAmount(err))

	_, err = s.service.AddSkill(s.ctx, "guild-1", "owner-1", "lore", -3)
	s.True(liviaerr.IsInvalidAmount(err))
}

func (s *CharacterServiceSuite) TestRoll_Breakdown() {
	s.createNoble()

	// Trained persuasion at 4, Mind is 5, die shows 10: total 19
	_, err := s.service.AddSkill(s.ctx, "guild-1", "owner-1", "persuasion", 4)
	s.Require().NoError(err)

	s.roller.SetRolls([]int{10})

	result, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "persuasion")
	s.Require().NoError(err)
	s.Equal(10, result.Die)
	s.Equal(4, result.SkillRank)
	s.Equal(5, result.StatValue)
	s.Equal(19, result.Total)
	s.Equal(entities.StatMind, result.Stat)
	s.False(result.IsCrit)
	s.False(result.IsFumble)
}

func (s *CharacterServiceSuite) TestRoll_UntrainedSkill() {
	s.createNoble()

	// Untrained brawling rolls at rank 0 with Body 3
	s.roller.SetRolls([]int{15})

	result, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "brawling")
	s.Require().NoError(err)
	s.Equal(0, result.SkillRank)
	s.Equal(3, result.StatValue)
	s.Equal(18, result.Total)
}

func (s *CharacterServiceSuite) TestRoll_CritAndFumble() {
	s.createNoble()

	s.roller.SetRolls([]int{20, 1})

	crit, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "lore")
	s.Require().NoError(err)
	s.True(crit.IsCrit)

	fumble, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "lore")
	s.Require().NoError(err)
	s.True(fumble.IsFumble)
}

func (s *CharacterServiceSuite) TestRoll_UnknownSkill() {
	s.createNoble()

	_, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "basket_weaving")
	s.True(liviaerr.IsUnknownSkill(err))
}

func (s *CharacterServiceSuite) TestRoll_DoesNotMutate() {
	s.createNoble()
	s.roller.SetRolls([]int{7})

	_, err := s.service.Roll(s.ctx, "guild-1", "owner-1", "lore")
	s.Require().NoError(err)

	char, err := s.service.Get(s.ctx, "guild-1", "owner-1")
	s.Require().NoError(err)
	s.Equal(entities.Pool{Current: 10, Max: 10}, char.Pools.Sanity)
	s.Equal(1000, char.Wallet)
}

func (s *CharacterServiceSuite) TestApplyDamage() {
	s.createNoble()

	result, err := s.service.ApplyDamage(s.ctx, "guild-1", "owner-1", entities.PoolHealth, 2)
	s.Require().NoError(err)
	s.Equal(2, result.Applied)
	s.Equal(4, result.Current)
	s.Equal(6, result.Max)
	s.False(result.Depleted)
}

func (s *CharacterServiceSuite) TestApplyDamage_OverkillDepletes() {
	s.createNoble()

	result, err := s.service.ApplyDamage(s.ctx, "guild-1", "owner-1", entities.PoolSpirit, 99)
	s.Require().NoError(err)
	s.Equal(2, result.Applied)
	s.Equal(0, result.Current)
	s.True(result.Depleted)
}

func (s *CharacterServiceSuite) TestApplyHeal_ClampsAtMax() {
	s.createNoble()

	_, err := s.service.ApplyDamage(s.ctx, "guild-1", "owner-1", entities.PoolHealth, 3)
	s.Require().NoError(err)

	result, err := s.service.ApplyHeal(s.ctx, "guild-1", "owner-1", entities.PoolHealth, 50)
	s.Require().NoError(err)
	s.Equal(3, result.Applied)
	s.Equal(6, result.Current)
	s.False(result.Depleted)
}

func (s *CharacterServiceSuite) TestApplyDelta_Validation() {
	s.createNoble()

	_, err := s.service.ApplyDamage(s.ctx, "guild-1", "owner-1", entities.PoolHealth, 0)
	s.True(liviaerr.IsInvalidAmount(err))

	_, err = s.service.ApplyHeal(s.ctx, "guild-1", "owner-1", entities.PoolKind("mana"), 2)
	s.Equal(liviaerr.CodeInvalidArgument, liviaerr.GetCode(err))
}

// Repository failure paths go through the generated mock.
func TestCharacterService_CreateStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)

	store := storage.NewStore(&storage.StoreConfig{Repository: repo})
	svc := characterService.NewService(&characterService.ServiceConfig{Store: store})

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(liviaerr.Internal("redis down"))

	_, err := svc.Create(context.Background(), &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Name:      "Livia",
		Primary:   entities.StatMind,
		Secondary: entities.StatBody,
		Origin:    entities.OriginNoble,
	})
	if err == nil {
		t.Fatal("expected error from failing repository")
	}
}

func TestCharacterService_GetPassesThroughNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)

	store := storage.NewStore(&storage.StoreConfig{Repository: repo})
	svc := characterService.NewService(&characterService.ServiceConfig{Store: store})

	repo.EXPECT().
		GetByOwner(gomock.Any(), "guild-1", "owner-1").
		Return(nil, liviaerr.NotFound("no character"))

	_, err := svc.Get(context.Background(), "guild-1", "owner-1")
	if !liviaerr.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
