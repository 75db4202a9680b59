package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	characterHandler "github.com/marbleisles/livia-bot/internal/handlers/discord/character"
	economyHandler "github.com/marbleisles/livia-bot/internal/handlers/discord/economy"
	"github.com/marbleisles/livia-bot/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	// Character handlers
	createHandler   *characterHandler.CreateHandler
	sheetHandler    *characterHandler.SheetHandler
	skillAddHandler *characterHandler.SkillAddHandler
	rollHandler     *characterHandler.RollHandler
	vitalsHandler   *characterHandler.VitalsHandler

	// Economy handlers
	walletHandler    *economyHandler.WalletHandler
	shopHandler      *economyHandler.ShopHandler
	buyHandler       *economyHandler.BuyHandler
	inventoryHandler *economyHandler.InventoryHandler
	gmHandler        *economyHandler.GmHandler
	backupHandler    *economyHandler.BackupHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		createHandler: characterHandler.NewCreateHandler(&characterHandler.CreateHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		sheetHandler: characterHandler.NewSheetHandler(&characterHandler.SheetHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		skillAddHandler: characterHandler.NewSkillAddHandler(&characterHandler.SkillAddHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		rollHandler: characterHandler.NewRollHandler(&characterHandler.RollHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		vitalsHandler: characterHandler.NewVitalsHandler(&characterHandler.VitalsHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		walletHandler: economyHandler.NewWalletHandler(&economyHandler.WalletHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		shopHandler: economyHandler.NewShopHandler(),
		buyHandler: economyHandler.NewBuyHandler(&economyHandler.BuyHandlerConfig{
			EconomyService: cfg.ServiceProvider.EconomyService,
		}),
		inventoryHandler: economyHandler.NewInventoryHandler(&economyHandler.InventoryHandlerConfig{
			CharacterService: cfg.ServiceProvider.CharacterService,
		}),
		gmHandler: economyHandler.NewGmHandler(&economyHandler.GmHandlerConfig{
			EconomyService: cfg.ServiceProvider.EconomyService,
		}),
		backupHandler: economyHandler.NewBackupHandler(&economyHandler.BackupHandlerConfig{
			EconomyService: cfg.ServiceProvider.EconomyService,
		}),
	}
}

var statChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Mind", Value: "mind"},
	{Name: "Body", Value: "body"},
	{Name: "Soul", Value: "soul"},
}

var originChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Noble", Value: "noble"},
	{Name: "Citizen", Value: "citizen"},
	{Name: "Country", Value: "country"},
	{Name: "Streetrat", Value: "streetrat"},
}

var weaponChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Pistol", Value: "pistol"},
	{Name: "Dagger", Value: "dagger"},
}

var poolChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Sanity", Value: "sanity"},
	{Name: "Health", Value: "health"},
	{Name: "Spirit", Value: "spirit"},
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "create",
			Description: "Create your Marble Isles character",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Character name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "primary",
					Description: "Primary stat (starts at 5)",
					Required:    true,
					Choices:     statChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "secondary",
					Description: "Secondary stat (starts at 3)",
					Required:    true,
					Choices:     statChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "origin",
					Description: "Where you come from",
					Required:    true,
					Choices:     originChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "streetrat_weapon",
					Description: "Starting weapon (streetrat only)",
					Required:    false,
					Choices:     weaponChoices,
				},
			},
		},
		{
			Name:        "sheet",
			Description: "Show your character sheet",
		},
		{
			Name:        "skill_add",
			Description: "Add points to one of your skills",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "skill",
					Description: "Skill to train",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Points to add",
					Required:    true,
				},
			},
		},
		{
			Name:        "roll",
			Description: "Roll a d20 skill check",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "skill",
					Description: "Skill to roll",
					Required:    true,
				},
			},
		},
		{
			Name:        "damage",
			Description: "Take damage to a resource pool",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "Which pool",
					Required:    true,
					Choices:     poolChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How much",
					Required:    true,
				},
			},
		},
		{
			Name:        "heal",
			Description: "Recover a resource pool",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "Which pool",
					Required:    true,
					Choices:     poolChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How much",
					Required:    true,
				},
			},
		},
		{
			Name:        "wallet",
			Description: "Check your doubloons",
		},
		{
			Name:        "shop",
			Description: "Browse the general store",
		},
		{
			Name:        "buy",
			Description: "Buy an item from the store",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item to buy",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "qty",
					Description: "How many (default 1)",
					Required:    false,
				},
			},
		},
		{
			Name:        "inventory",
			Description: "Open your pack",
		},
		{
			Name:        "gm_give",
			Description: "GM: give doubloons to a player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Who receives",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How many doubloons",
					Required:    true,
				},
			},
		},
		{
			Name:        "gm_additem",
			Description: "GM: add an item to a player's pack",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Who receives",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "qty",
					Description: "How many (default 1)",
					Required:    false,
				},
			},
		},
		{
			Name:        "gm_backup",
			Description: "GM: export all characters as a JSON file",
		},
		{
			Name:        "gm_restore",
			Description: "GM: restore characters from a backup file",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "file",
					Description: "Backup file from /gm_backup",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	h.handleCommand(s, i)
}

// handleCommand dispatches slash commands to their handlers
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	var err error
	switch name {
	case "create":
		err = h.createHandler.Handle(s, i)
	case "sheet":
		err = h.sheetHandler.Handle(s, i)
	case "skill_add":
		err = h.skillAddHandler.Handle(s, i)
	case "roll":
		err = h.rollHandler.Handle(s, i)
	case "damage":
		err = h.vitalsHandler.HandleDamage(s, i)
	case "heal":
		err = h.vitalsHandler.HandleHeal(s, i)
	case "wallet":
		err = h.walletHandler.Handle(s, i)
	case "shop":
		err = h.shopHandler.Handle(s, i)
	case "buy":
		err = h.buyHandler.Handle(s, i)
	case "inventory":
		err = h.inventoryHandler.Handle(s, i)
	case "gm_give":
		err = h.gmHandler.HandleGive(s, i)
	case "gm_additem":
		err = h.gmHandler.HandleAddItem(s, i)
	case "gm_backup":
		err = h.backupHandler.HandleBackup(s, i)
	case "gm_restore":
		err = h.backupHandler.HandleRestore(s, i)
	default:
		return
	}

	if err != nil {
		log.Printf("Error handling /%s: %v", name, err)
	}
}
