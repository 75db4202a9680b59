package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
)

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID              string                `json:"id"`
	OwnerID         string                `json:"owner_id"`
	GuildID         string                `json:"guild_id"`
	Name            string                `json:"name"`
	PrimaryStat     entities.Stat         `json:"primary_stat"`
	SecondaryStat   entities.Stat         `json:"secondary_stat"`
	Origin          entities.Origin       `json:"origin"`
	StreetratWeapon entities.WeaponChoice `json:"streetrat_weapon,omitempty"`
	Stats           map[entities.Stat]int `json:"stats"`
	Skills          map[string]int        `json:"skills"`
	Pools           entities.Pools        `json:"pools"`
	Wallet          int                   `json:"wallet"`
	Inventory       map[string]int        `json:"inventory"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// key generates the Redis key for a character record
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerKey generates the Redis key binding a player to their character ID
func (r *redisRepo) ownerKey(guildID, ownerID string) string {
	return fmt.Sprintf("guild:%s:owner:%s:character", guildID, ownerID)
}

// guildCharactersKey generates the Redis key for a guild's character ID set
func (r *redisRepo) guildCharactersKey(guildID string) string {
	return fmt.Sprintf("guild:%s:characters", guildID)
}

func validate(char *entities.Character) error {
	if char == nil {
		return liviaerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return liviaerr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return liviaerr.InvalidArgument("character owner ID is required")
	}
	if char.GuildID == "" {
		return liviaerr.InvalidArgument("character guild ID is required")
	}
	return nil
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	// One character per player per guild
	exists, err := r.client.Exists(ctx, r.ownerKey(char.GuildID, char.OwnerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return liviaerr.AlreadyExistsf("player '%s' already has a character in guild '%s'", char.OwnerID, char.GuildID).
			WithMeta("owner_id", char.OwnerID).
			WithMeta("guild_id", char.GuildID)
	}

	data := toCharacterData(char)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Store character and indexes together
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.Set(ctx, r.ownerKey(char.GuildID, char.OwnerID), char.ID, 0)
	pipe.SAdd(ctx, r.guildCharactersKey(char.GuildID), char.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by record ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, liviaerr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, liviaerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return fromCharacterData(&data), nil
}

// GetByOwner retrieves the character bound to a player in a guild
func (r *redisRepo) GetByOwner(ctx context.Context, guildID, ownerID string) (*entities.Character, error) {
	if guildID == "" {
		return nil, liviaerr.InvalidArgument("guild ID is required")
	}
	if ownerID == "" {
		return nil, liviaerr.InvalidArgument("owner ID is required")
	}

	id, err := r.client.Get(ctx, r.ownerKey(guildID, ownerID)).Result()
	if err == redis.Nil {
		return nil, liviaerr.NotFoundf("no character for player '%s' in guild '%s'", ownerID, guildID).
			WithMeta("owner_id", ownerID).
			WithMeta("guild_id", guildID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve character for owner: %w", err)
	}

	return r.Get(ctx, id)
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	// Verify it exists and preserve the created timestamp
	existingData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return liviaerr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var existing CharacterData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data := toCharacterData(char)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(char.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Set writes a character unconditionally, refreshing all indexes
func (r *redisRepo) Set(ctx context.Context, char *entities.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	data := toCharacterData(char)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.Set(ctx, r.ownerKey(char.GuildID, char.OwnerID), char.ID, 0)
	pipe.SAdd(ctx, r.guildCharactersKey(char.GuildID), char.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set character: %w", err)
	}

	return nil
}

// Delete removes a character and its indexes
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return liviaerr.InvalidArgument("character ID is required")
	}

	// Find owner/guild for index cleanup
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.Del(ctx, r.ownerKey(char.GuildID, char.OwnerID))
	pipe.SRem(ctx, r.guildCharactersKey(char.GuildID), id)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// ListByGuild retrieves all characters in a guild
func (r *redisRepo) ListByGuild(ctx context.Context, guildID string) ([]*entities.Character, error) {
	if guildID == "" {
		return nil, liviaerr.InvalidArgument("guild ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.guildCharactersKey(guildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*entities.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			chars[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chars, nil
}

// toCharacterData converts an entity to the data struct for storage
func toCharacterData(char *entities.Character) *CharacterData {
	return &CharacterData{
		ID:              char.ID,
		OwnerID:         char.OwnerID,
		GuildID:         char.GuildID,
		Name:            char.Name,
		PrimaryStat:     char.PrimaryStat,
		SecondaryStat:   char.SecondaryStat,
		Origin:          char.Origin,
		StreetratWeapon: char.StreetratWeapon,
		Stats:           char.Stats,
		Skills:          char.Skills,
		Pools:           char.Pools,
		Wallet:          char.Wallet,
		Inventory:       char.Inventory,
	}
}

// fromCharacterData converts a data struct back to an entity
func fromCharacterData(data *CharacterData) *entities.Character {
	return &entities.Character{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		GuildID:         data.GuildID,
		Name:            data.Name,
		PrimaryStat:     data.PrimaryStat,
		SecondaryStat:   data.SecondaryStat,
		Origin:          data.Origin,
		StreetratWeapon: data.StreetratWeapon,
		Stats:           data.Stats,
		Skills:          data.Skills,
		Pools:           data.Pools,
		Wallet:          data.Wallet,
		Inventory:       data.Inventory,
	}
}
