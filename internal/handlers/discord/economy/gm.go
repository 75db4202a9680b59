package economy

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/handlers/discord/utils"
	"github.com/marbleisles/livia-bot/internal/rulebook"
	economyService "github.com/marbleisles/livia-bot/internal/services/economy"
)

// GmHandler handles the GM-only /gm_give and /gm_additem commands
type GmHandler struct {
	economyService economyService.Service
}

// GmHandlerConfig holds configuration for the GM handler
type GmHandlerConfig struct {
	EconomyService economyService.Service
}

// NewGmHandler creates a new GM handler
func NewGmHandler(cfg *GmHandlerConfig) *GmHandler {
	return &GmHandler{
		economyService: cfg.EconomyService,
	}
}

// HandleGive processes the gm_give command
func (h *GmHandler) HandleGive(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !utils.MemberIsGM(i) {
		return respondWithError(s, i, "Only GMs can hand out doubloons.")
	}

	targetID := utils.GetUserOption(i, "player")
	if targetID == "" {
		return respondWithError(s, i, "Pick a player to give to.")
	}
	amount := int(utils.GetIntOption(i, "amount"))

	char, err := h.economyService.GmGive(context.Background(), i.GuildID, targetID, amount)
	if err != nil {
		return h.respondGmError(s, i, err)
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("Gave %d %s to **%s**. Wallet: %d.", amount, rulebook.CurrencyName, char.Name, char.Wallet))
}

// HandleAddItem processes the gm_additem command
func (h *GmHandler) HandleAddItem(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !utils.MemberIsGM(i) {
		return respondWithError(s, i, "Only GMs can conjure items.")
	}

	targetID := utils.GetUserOption(i, "player")
	if targetID == "" {
		return respondWithError(s, i, "Pick a player to give to.")
	}
	item := utils.GetStringOption(i, "item")
	qty := int(utils.GetIntOption(i, "qty"))
	if qty == 0 {
		qty = 1
	}

	char, err := h.economyService.GmAddItem(context.Background(), i.GuildID, targetID, item, qty)
	if err != nil {
		return h.respondGmError(s, i, err)
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("Slipped **%d× %s** into **%s**'s pack.", qty, rulebook.Slug(item), char.Name))
}

func (h *GmHandler) respondGmError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch liviaerr.GetCode(err) {
	case liviaerr.CodeInvalidAmount:
		return respondWithError(s, i, "Amount must be a positive number.")
	case liviaerr.CodeInvalidArgument:
		return respondWithError(s, i, err.Error())
	case liviaerr.CodeNotFound:
		return respondWithError(s, i, "That player has no character in this server.")
	default:
		log.Printf("Error in GM command: %v", err)
		return respondWithError(s, i, "Something went wrong.")
	}
}
