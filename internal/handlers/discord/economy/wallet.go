package economy

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/rulebook"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
)

// WalletHandler handles the /wallet command
type WalletHandler struct {
	characterService characterService.Service
}

// WalletHandlerConfig holds configuration for the wallet handler
type WalletHandlerConfig struct {
	CharacterService characterService.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(cfg *WalletHandlerConfig) *WalletHandler {
	return &WalletHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the wallet command
func (h *WalletHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	char, err := h.characterService.Get(context.Background(), i.GuildID, i.Member.User.ID)
	if err != nil {
		if liviaerr.IsNotFound(err) {
			return respondWithError(s, i, "No character yet. Use /create first.")
		}
		log.Printf("Error getting wallet for %s: %v", i.Member.User.ID, err)
		return respondWithError(s, i, "Something went wrong checking your wallet.")
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("💰 **%s** carries %d %s.", char.Name, char.Wallet, rulebook.CurrencyName))
}
