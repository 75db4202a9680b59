package economy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/repositories/characters"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
	economyService "github.com/marbleisles/livia-bot/internal/services/economy"
	"github.com/marbleisles/livia-bot/internal/storage"
)

type EconomyServiceSuite struct {
	suite.Suite
	ctx        context.Context
	characters characterService.Service
	service    economyService.Service
}

func (s *EconomyServiceSuite) SetupTest() {
	s.ctx = context.Background()

	store := storage.NewStore(&storage.StoreConfig{
		Repository: characters.NewInMemoryRepository(),
	})
	s.characters = characterService.NewService(&characterService.ServiceConfig{
		Store: store,
	})
	s.service = economyService.NewService(&economyService.ServiceConfig{
		Store: store,
	})
}

func TestEconomyServiceSuite(t *testing.T) {
	suite.Run(t, new(EconomyServiceSuite))
}

func (s *EconomyServiceSuite) createCitizen(ownerID string) *entities.Character {
	char, err := s.characters.Create(s.ctx, &characterService.CreateInput{
		GuildID:   "guild-1",
		OwnerID:   ownerID,
		Name:      "Livia",
		Primary:   entities.StatMind,
		Secondary: entities.StatBody,
		Origin:    entities.OriginCitizen,
	})
	s.Require().NoError(err)
	return char
}

func (s *EconomyServiceSuite) TestBuy() {
	s.createCitizen("owner-1") // wallet 400

	result, err := s.service.Buy(s.ctx, "guild-1", "owner-1", "healing_salves", 3)
	s.Require().NoError(err)
	s.Equal("healing_salves", result.Item)
	s.Equal(3, result.Qty)
	s.Equal(90, result.Cost)
	s.Equal(310, result.Character.Wallet)
	s.Equal(3, result.Character.ItemCount("healing_salves"))
}

func (s *EconomyServiceSuite) TestBuy_NormalizesItemName() {
	s.createCitizen("owner-1")

	result, err := s.service.Buy(s.ctx, "guild-1", "owner-1", "  Healing Salves ", 1)
	s.Require().NoError(err)
	s.Equal("healing_salves", result.Item)
}

func (s *EconomyServiceSuite) TestBuy_InsufficientFundsLeavesStateUntouched() {
	s.createCitizen("owner-1") // wallet 400

	// 3 pistols cost 600, wallet holds 400
	_, err := s.service.Buy(s.ctx, "guild-1", "owner-1", "pistol", 3)
	s.Require().Error(err)
	s.True(liviaerr.IsInsufficientFunds(err))

	// The failed purchase must not debit or stock anything
	char, err := s.characters.Get(s.ctx, "guild-1", "owner-1")
	s.Require().NoError(err)
	s.Equal(400, char.Wallet)
	s.Equal(0, char.ItemCount("pistol"))
}

func (s *EconomyServiceSuite) TestBuy_ExactFunds() {
	s.createCitizen("owner-1") // wallet 400

	result, err := s.service.Buy(s.ctx, "guild-1", "owner-1", "pistol", 2)
	s.Require().NoError(err)
	s.Equal(0, result.Character.Wallet)
	s.Equal(2, result.Character.ItemCount("pistol"))
}

func (s *EconomyServiceSuite) TestBuy_Validation() {
	s.createCitizen("owner-1")

	_, err := s.service.Buy(s.ctx, "guild-1", "owner-1", "cannon", 1)
	s.True(liviaerr.IsUnknownItem(err))

	_, err = s.service.Buy(s.ctx, "guild-1", "owner-1", "dagger", 0)
	s.True(liviaerr.IsInvalidAmount(err))

	_, err = s.service.Buy(s.ctx, "guild-1", "owner-1", "dagger", -2)
	s.True(liviaerr.IsInvalidAmount(err))
}

func (s *EconomyServiceSuite) TestBuy_NoCharacter() {
	_, err := s.service.Buy(s.ctx, "guild-1", "nobody", "dagger", 1)
	s.True(liviaerr.IsNotFound(err))
}

func (s *EconomyServiceSuite) TestGmGive() {
	s.createCitizen("owner-1")

	char, err := s.service.GmGive(s.ctx, "guild-1", "owner-1", 250)
	s.Require().NoError(err)
	s.Equal(650, char.Wallet)

	_, err = s.service.GmGive(s.ctx, "guild-1", "owner-1", 0)
	s.True(liviaerr.IsInvalidAmount(err))
}

func (s *EconomyServiceSuite) TestGmAddItem() {
	s.createCitizen("owner-1")

	// GM grants are not limited to the shop catalog
	char, err := s.service.GmAddItem(s.ctx, "guild-1", "owner-1", "Cursed Idol", 1)
	s.Require().NoError(err)
	s.Equal(1, char.ItemCount("cursed_idol"))

	_, err = s.service.GmAddItem(s.ctx, "guild-1", "owner-1", "cursed_idol", -1)
	s.True(liviaerr.IsInvalidAmount(err))

	_, err = s.service.GmAddItem(s.ctx, "guild-1", "owner-1", "", 1)
	s.Equal(liviaerr.CodeInvalidArgument, liviaerr.GetCode(err))
}

func (s *EconomyServiceSuite) TestExportRestore_RoundTrip() {
	s.createCitizen("owner-1")
	s.createCitizen("owner-2")

	_, err := s.service.GmGive(s.ctx, "guild-1", "owner-1", 100)
	s.Require().NoError(err)

	backup, err := s.service.Export(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal("guild-1", backup.GuildID)
	s.Len(backup.Characters, 2)
	s.False(backup.ExportedAt.IsZero())

	// Wreck the live state, then restore the snapshot
	_, err = s.service.GmGive(s.ctx, "guild-1", "owner-1", 9999)
	s.Require().NoError(err)

	count, err := s.service.Restore(s.ctx, "guild-1", backup)
	s.Require().NoError(err)
	s.Equal(2, count)

	char, err := s.characters.Get(s.ctx, "guild-1", "owner-1")
	s.Require().NoError(err)
	s.Equal(500, char.Wallet)
}

func (s *EconomyServiceSuite) TestRestore_SkipsForeignGuildRecords() {
	s.createCitizen("owner-1")

	backup, err := s.service.Export(s.ctx, "guild-1")
	s.Require().NoError(err)

	// Smuggle a record from another guild into the snapshot
	backup.Characters = append(backup.Characters, &entities.Character{
		ID:      "foreign",
		OwnerID: "owner-9",
		GuildID: "guild-2",
		Name:    "Intruder",
	})

	count, err := s.service.Restore(s.ctx, "guild-1", backup)
	s.Require().NoError(err)
	s.Equal(1, count)

	chars, err := s.service.Export(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Len(chars.Characters, 1)
}

func (s *EconomyServiceSuite) TestRestore_Validation() {
	_, err := s.service.Restore(s.ctx, "guild-1", nil)
	s.Equal(liviaerr.CodeInvalidArgument, liviaerr.GetCode(err))

	_, err = s.service.Restore(s.ctx, "", &economyService.Backup{})
	s.Equal(liviaerr.CodeInvalidArgument, liviaerr.GetCode(err))
}
