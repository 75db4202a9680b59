package character

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/handlers/discord/utils"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
)

// RollHandler handles the /roll command
type RollHandler struct {
	characterService characterService.Service
}

// RollHandlerConfig holds configuration for the roll handler
type RollHandlerConfig struct {
	CharacterService characterService.Service
}

// NewRollHandler creates a new roll handler
func NewRollHandler(cfg *RollHandlerConfig) *RollHandler {
	return &RollHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the roll command
func (h *RollHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	skill := utils.GetStringOption(i, "skill")

	result, err := h.characterService.Roll(context.Background(), i.GuildID, i.Member.User.ID, skill)
	if err != nil {
		switch liviaerr.GetCode(err) {
		case liviaerr.CodeUnknownSkill:
			return respondWithError(s, i, err.Error())
		case liviaerr.CodeNotFound:
			return respondWithError(s, i, "Create a character first with /create.")
		default:
			log.Printf("Error rolling for %s: %v", i.Member.User.ID, err)
			return respondWithError(s, i, "Something went wrong with that roll.")
		}
	}

	displayName := i.Member.User.Username
	if i.Member.Nick != "" {
		displayName = i.Member.Nick
	}

	embed := buildRollEmbed(displayName, result)

	// Rolls are public: the whole table sees the outcome
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func buildRollEmbed(displayName string, result *characterService.RollResult) *discordgo.MessageEmbed {
	die := fmt.Sprintf("%d", result.Die)
	if result.IsCrit {
		die += " (CRIT!)"
	} else if result.IsFumble {
		die += " (botch)"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s rolls %s", displayName, result.Skill),
		Color: colorRoll,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "d20", Value: die, Inline: true},
			{Name: "Skill", Value: fmt.Sprintf("%d", result.SkillRank), Inline: true},
			{Name: string(result.Stat), Value: fmt.Sprintf("%d", result.StatValue), Inline: true},
			{Name: "Total ⭐", Value: fmt.Sprintf("**%d**", result.Total), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: locationFooter},
	}
}
