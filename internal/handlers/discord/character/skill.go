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

// SkillAddHandler handles the /skill_add command
type SkillAddHandler struct {
	characterService characterService.Service
}

// SkillAddHandlerConfig holds configuration for the skill add handler
type SkillAddHandlerConfig struct {
	CharacterService characterService.Service
}

// NewSkillAddHandler creates a new skill add handler
func NewSkillAddHandler(cfg *SkillAddHandlerConfig) *SkillAddHandler {
	return &SkillAddHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the skill_add command
func (h *SkillAddHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	skill := utils.GetStringOption(i, "skill")
	amount := int(utils.GetIntOption(i, "amount"))

	result, err := h.characterService.AddSkill(context.Background(), i.GuildID, i.Member.User.ID, skill, amount)
	if err != nil {
		switch liviaerr.GetCode(err) {
		case liviaerr.CodeUnknownSkill:
			return respondWithError(s, i, err.Error())
		case liviaerr.CodeInvalidAmount:
			return respondWithError(s, i, "Points to add must be a positive number.")
		case liviaerr.CodeNotFound:
			return respondWithError(s, i, "Create a character first with /create.")
		default:
			log.Printf("Error adding skill for %s: %v", i.Member.User.ID, err)
			return respondWithError(s, i, "Something went wrong training that skill.")
		}
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("Added %d to **%s** → now %d.", amount, result.Skill, result.NewRank))
}
