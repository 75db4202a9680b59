package characters

import (
	"context"
	"fmt"
	"sync"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character // record ID -> character
	owners     map[string]string              // guild/owner -> record ID
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
		owners:     make(map[string]string),
	}
}

func ownerIndex(guildID, ownerID string) string {
	return fmt.Sprintf("%s/%s", guildID, ownerID)
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, character *entities.Character) error {
	if err := validate(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.owners[ownerIndex(character.GuildID, character.OwnerID)]; exists {
		return liviaerr.AlreadyExistsf("player '%s' already has a character in guild '%s'", character.OwnerID, character.GuildID).
			WithMeta("owner_id", character.OwnerID).
			WithMeta("guild_id", character.GuildID)
	}

	// Store a copy to avoid external modifications
	r.characters[character.ID] = character.Clone()
	r.owners[ownerIndex(character.GuildID, character.OwnerID)] = character.ID

	return nil
}

// Get retrieves a character by record ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, liviaerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, liviaerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return character.Clone(), nil
}

// GetByOwner retrieves the character bound to a player in a guild
func (r *InMemoryRepository) GetByOwner(ctx context.Context, guildID, ownerID string) (*entities.Character, error) {
	if guildID == "" {
		return nil, liviaerr.InvalidArgument("guild ID is required")
	}
	if ownerID == "" {
		return nil, liviaerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	id, exists := r.owners[ownerIndex(guildID, ownerID)]
	r.mu.RUnlock()

	if !exists {
		return nil, liviaerr.NotFoundf("no character for player '%s' in guild '%s'", ownerID, guildID).
			WithMeta("owner_id", ownerID).
			WithMeta("guild_id", guildID)
	}

	return r.Get(ctx, id)
}

// Update updates an existing character
func (r *InMemoryRepository) Update(ctx context.Context, character *entities.Character) error {
	if err := validate(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; !exists {
		return liviaerr.NotFoundf("character with ID '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	r.characters[character.ID] = character.Clone()

	return nil
}

// Set writes a character unconditionally
func (r *InMemoryRepository) Set(ctx context.Context, character *entities.Character) error {
	if err := validate(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[character.ID] = character.Clone()
	r.owners[ownerIndex(character.GuildID, character.OwnerID)] = character.ID

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return liviaerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, exists := r.characters[id]
	if !exists {
		return liviaerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.owners, ownerIndex(character.GuildID, character.OwnerID))
	delete(r.characters, id)
	return nil
}

// ListByGuild retrieves all characters in a guild
func (r *InMemoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*entities.Character, error) {
	if guildID == "" {
		return nil, liviaerr.InvalidArgument("guild ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Character
	for _, char := range r.characters {
		if char.GuildID == guildID {
			result = append(result, char.Clone())
		}
	}

	return result, nil
}
