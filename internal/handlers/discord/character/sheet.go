package character

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/rulebook"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
)

// SheetHandler handles the /sheet command
type SheetHandler struct {
	characterService characterService.Service
}

// SheetHandlerConfig holds configuration for the sheet handler
type SheetHandlerConfig struct {
	CharacterService characterService.Service
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(cfg *SheetHandlerConfig) *SheetHandler {
	return &SheetHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the sheet command
func (h *SheetHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	char, err := h.characterService.Get(context.Background(), i.GuildID, i.Member.User.ID)
	if err != nil {
		if liviaerr.IsNotFound(err) {
			return respondWithError(s, i, "No character yet. Use /create first.")
		}
		log.Printf("Error getting character for %s: %v", i.Member.User.ID, err)
		return respondWithError(s, i, "Something went wrong fetching your sheet.")
	}

	embed := BuildCharacterSheetEmbed(char)

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// BuildCharacterSheetEmbed creates the character sheet embed
func BuildCharacterSheetEmbed(char *entities.Character) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Livia Bot — Character Sheet",
		Color: colorSheet,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: char.Name, Inline: true},
			{Name: "Origin", Value: string(char.Origin), Inline: true},
			{Name: "Wallet", Value: fmt.Sprintf("%d %s", char.Wallet, rulebook.CurrencyName), Inline: true},
			{Name: "Mind", Value: fmt.Sprintf("%d", char.StatValue(entities.StatMind)), Inline: true},
			{Name: "Body", Value: fmt.Sprintf("%d", char.StatValue(entities.StatBody)), Inline: true},
			{Name: "Soul", Value: fmt.Sprintf("%d", char.StatValue(entities.StatSoul)), Inline: true},
			{Name: "Sanity", Value: poolString(char.Pools.Sanity), Inline: true},
			{Name: "Health", Value: poolString(char.Pools.Health), Inline: true},
			{Name: "Spirit", Value: poolString(char.Pools.Spirit), Inline: true},
			{Name: "Skills", Value: char.SkillsString(), Inline: false},
			{Name: "Inventory", Value: char.InventoryString(), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: locationFooter},
	}
}

func poolString(p entities.Pool) string {
	return fmt.Sprintf("%d/%d", p.Current, p.Max)
}
