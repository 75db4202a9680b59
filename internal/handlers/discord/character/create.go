package character

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/handlers/discord/utils"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
)

// CreateHandler handles the /create command
type CreateHandler struct {
	characterService characterService.Service
}

// CreateHandlerConfig holds configuration for the create handler
type CreateHandlerConfig struct {
	CharacterService characterService.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(cfg *CreateHandlerConfig) *CreateHandler {
	return &CreateHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the create command
func (h *CreateHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := utils.GetStringOption(i, "name")

	primary, ok := entities.ParseStat(utils.GetStringOption(i, "primary"))
	if !ok {
		return respondWithError(s, i, "Pick a primary stat: Mind, Body or Soul.")
	}
	secondary, ok := entities.ParseStat(utils.GetStringOption(i, "secondary"))
	if !ok {
		return respondWithError(s, i, "Pick a secondary stat: Mind, Body or Soul.")
	}
	origin, ok := entities.ParseOrigin(utils.GetStringOption(i, "origin"))
	if !ok {
		return respondWithError(s, i, "Pick an origin: Noble, Citizen, Country or Streetrat.")
	}

	var weapon entities.WeaponChoice
	if raw := utils.GetStringOption(i, "streetrat_weapon"); raw != "" {
		weapon, ok = entities.ParseWeaponChoice(raw)
		if !ok {
			return respondWithError(s, i, "Streetrat weapons are pistol or dagger.")
		}
	}

	char, err := h.characterService.Create(context.Background(), &characterService.CreateInput{
		GuildID:   i.GuildID,
		OwnerID:   i.Member.User.ID,
		Name:      name,
		Primary:   primary,
		Secondary: secondary,
		Origin:    origin,
		Weapon:    weapon,
	})
	if err != nil {
		switch liviaerr.GetCode(err) {
		case liviaerr.CodeAlreadyExists:
			return respondWithError(s, i, "You already have a character. Use /sheet, or ask a GM to reset.")
		case liviaerr.CodeInvalidAttributeSelection:
			return respondWithError(s, i, "Primary and secondary must be different.")
		case liviaerr.CodeInvalidOriginChoice:
			return respondWithError(s, i, "Streetrat needs a starting weapon (pistol or dagger); other origins don't take one.")
		default:
			log.Printf("Error creating character for %s: %v", i.Member.User.ID, err)
			return respondWithError(s, i, "Something went wrong creating your character.")
		}
	}

	return respondEphemeral(s, i,
		fmt.Sprintf("**%s** is registered in the %s! Train skills with `/skill_add` and check `/sheet`.", char.Name, locationFooter))
}
