package services

import (
	"github.com/marbleisles/livia-bot/internal/dice"
	"github.com/marbleisles/livia-bot/internal/repositories/characters"
	characterService "github.com/marbleisles/livia-bot/internal/services/character"
	economyService "github.com/marbleisles/livia-bot/internal/services/economy"
	"github.com/marbleisles/livia-bot/internal/storage"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	EconomyService   economyService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	Roller              dice.Roller
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	// Both services share one store so per-player serialization holds
	// across command types
	store := storage.NewStore(&storage.StoreConfig{
		Repository: charRepo,
	})

	charService := characterService.NewService(&characterService.ServiceConfig{
		Store:  store,
		Roller: cfg.Roller,
	})

	econService := economyService.NewService(&economyService.ServiceConfig{
		Store: store,
	})

	return &Provider{
		CharacterService: charService,
		EconomyService:   econService,
	}
}
