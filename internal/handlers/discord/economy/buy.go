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

// BuyHandler handles the /buy command
type BuyHandler struct {
	economyService economyService.Service
}

// BuyHandlerConfig holds configuration for the buy handler
type BuyHandlerConfig struct {
	EconomyService economyService.Service
}

// NewBuyHandler creates a new buy handler
func NewBuyHandler(cfg *BuyHandlerConfig) *BuyHandler {
	return &BuyHandler{
		economyService: cfg.EconomyService,
	}
}

// Handle processes the buy command
func (h *BuyHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	item := utils.GetStringOption(i, "item")
	qty := int(utils.GetIntOption(i, "qty"))
	if qty == 0 {
		qty = 1
	}

	result, err := h.economyService.Buy(context.Background(), i.GuildID, i.Member.User.ID, item, qty)
	if err != nil {
		switch liviaerr.GetCode(err) {
		case liviaerr.CodeUnknownItem:
			return respondWithError(s, i, "The store doesn't stock that. Browse with /shop.")
		case liviaerr.CodeInsufficientFunds:
			return respondWithError(s, i, err.Error())
		case liviaerr.CodeInvalidAmount:
			return respondWithError(s, i, "Quantity must be a positive number.")
		case liviaerr.CodeNotFound:
			return respondWithError(s, i, "No character yet. Use /create first.")
		default:
			log.Printf("Error buying for %s: %v", i.Member.User.ID, err)
			return respondWithError(s, i, "Something went wrong at the counter.")
		}
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("🛒 Bought **%d× %s** for %d %s. Wallet: %d.",
			result.Qty, result.Item, result.Cost, rulebook.CurrencyName, result.Character.Wallet))
}
