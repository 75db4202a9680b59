package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/google/uuid"

	"github.com/marbleisles/livia-bot/internal/entities"
)

// Repository defines the interface for character persistence.
// A player owns at most one character per guild; Create enforces that.
type Repository interface {
	// Create stores a new character, failing if the owner already has one in the guild
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by record ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByOwner retrieves the character bound to a player in a guild
	GetByOwner(ctx context.Context, guildID, ownerID string) (*entities.Character, error)

	// Update updates an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Set writes a character unconditionally (used by restore)
	Set(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// ListByGuild retrieves all characters in a guild
	ListByGuild(ctx context.Context, guildID string) ([]*entities.Character, error)
}

// IDGenerator produces character record IDs, injectable for tests
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewUUIDGenerator creates the default UUID-backed ID generator
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}
