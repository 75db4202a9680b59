package economy

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
)

// InventoryHandler handles the /inventory command
type InventoryHandler struct {
	characterService characterService.Service
}

// InventoryHandlerConfig holds configuration for the inventory handler
type InventoryHandlerConfig struct {
	CharacterService characterService.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(cfg *InventoryHandlerConfig) *InventoryHandler {
	return &InventoryHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the inventory command
func (h *InventoryHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	char, err := h.characterService.Get(context.Background(), i.GuildID, i.Member.User.ID)
	if err != nil {
		if liviaerr.IsNotFound(err) {
			return respondWithError(s, i, "No character yet. Use /create first.")
		}
		log.Printf("Error getting inventory for %s: %v", i.Member.User.ID, err)
		return respondWithError(s, i, "Something went wrong opening your pack.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎒 " + char.Name + "'s Pack",
		Description: char.InventoryString(),
		Color:       colorShop,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
