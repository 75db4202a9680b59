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

// VitalsHandler handles the /damage and /heal commands
type VitalsHandler struct {
	characterService characterService.Service
}

// VitalsHandlerConfig holds configuration for the vitals handler
type VitalsHandlerConfig struct {
	CharacterService characterService.Service
}

// NewVitalsHandler creates a new vitals handler
func NewVitalsHandler(cfg *VitalsHandlerConfig) *VitalsHandler {
	return &VitalsHandler{
		characterService: cfg.CharacterService,
	}
}

// terminalNarration is what the table hears when a pool hits 0
var terminalNarration = map[entities.PoolKind]string{
	entities.PoolHealth: "You **die**.",
	entities.PoolSanity: "You go **insane**.",
	entities.PoolSpirit: "You become **possessed**.",
}

// HandleDamage processes the damage command
func (h *VitalsHandler) HandleDamage(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	kind, ok := entities.ParsePoolKind(utils.GetStringOption(i, "kind"))
	if !ok {
		return respondWithError(s, i, "Pick one of: sanity, health, spirit.")
	}
	amount := int(utils.GetIntOption(i, "amount"))

	result, err := h.characterService.ApplyDamage(context.Background(), i.GuildID, i.Member.User.ID, kind, amount)
	if err != nil {
		return h.respondDeltaError(s, i, err)
	}

	msg := fmt.Sprintf("%s now **%d**/%d.", poolLabel(kind), result.Current, result.Max)
	if result.Depleted {
		msg += " " + terminalNarration[kind]
	}
	return respondMessage(s, i, msg)
}

// HandleHeal processes the heal command
func (h *VitalsHandler) HandleHeal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	kind, ok := entities.ParsePoolKind(utils.GetStringOption(i, "kind"))
	if !ok {
		return respondWithError(s, i, "Pick one of: sanity, health, spirit.")
	}
	amount := int(utils.GetIntOption(i, "amount"))

	result, err := h.characterService.ApplyHeal(context.Background(), i.GuildID, i.Member.User.ID, kind, amount)
	if err != nil {
		return h.respondDeltaError(s, i, err)
	}

	return respondMessage(s, i, fmt.Sprintf("%s now **%d**/%d.", poolLabel(kind), result.Current, result.Max))
}

func (h *VitalsHandler) respondDeltaError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch liviaerr.GetCode(err) {
	case liviaerr.CodeInvalidAmount:
		return respondWithError(s, i, "Amount must be a positive number.")
	case liviaerr.CodeNotFound:
		return respondWithError(s, i, "Create a character first with /create.")
	default:
		log.Printf("Error applying vitals delta: %v", err)
		return respondWithError(s, i, "Something went wrong.")
	}
}

func poolLabel(kind entities.PoolKind) string {
	switch kind {
	case entities.PoolHealth:
		return "Health"
	case entities.PoolSanity:
		return "Sanity"
	case entities.PoolSpirit:
		return "Spirit"
	default:
		return string(kind)
	}
}
