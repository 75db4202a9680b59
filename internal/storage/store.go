// Package storage wraps the character repository with per-player
// serialization. Two commands for the same player never interleave their
// read-modify-write; commands for distinct players proceed concurrently.
package storage

import (
	"context"
	"sync"

	"github.com/marbleisles/livia-bot/internal/entities"
	"github.com/marbleisles/livia-bot/internal/repositories/characters"
)

// Store owns the mapping from player identity to character record
type Store struct {
	repo characters.Repository

	mu    sync.Mutex
	locks map[string]*sync.Mutex // guild/owner -> lock
}

// StoreConfig holds configuration for the store
type StoreConfig struct {
	Repository characters.Repository
}

// NewStore creates a new character store
func NewStore(cfg *StoreConfig) *Store {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	return &Store{
		repo:  cfg.Repository,
		locks: make(map[string]*sync.Mutex),
	}
}

// playerLock returns the mutex for a player, creating it on first use.
// Locks are never removed; the population is bounded by active players.
func (s *Store) playerLock(guildID, ownerID string) *sync.Mutex {
	key := guildID + "/" + ownerID

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// Create stores a new character, failing if the player already has one
func (s *Store) Create(ctx context.Context, char *entities.Character) error {
	lock := s.playerLock(char.GuildID, char.OwnerID)
	lock.Lock()
	defer lock.Unlock()

	return s.repo.Create(ctx, char)
}

// Get retrieves a player's character
func (s *Store) Get(ctx context.Context, guildID, ownerID string) (*entities.Character, error) {
	return s.repo.GetByOwner(ctx, guildID, ownerID)
}

// Update performs a scoped read-modify-write for one player. The mutator
// runs against a private copy; the result is persisted only if the mutator
// returns nil, so no partial write is ever observed.
func (s *Store) Update(ctx context.Context, guildID, ownerID string, mutate func(*entities.Character) error) (*entities.Character, error) {
	lock := s.playerLock(guildID, ownerID)
	lock.Lock()
	defer lock.Unlock()

	char, err := s.repo.GetByOwner(ctx, guildID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := mutate(char); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, char); err != nil {
		return nil, err
	}

	return char, nil
}

// ListByGuild retrieves all characters in a guild
func (s *Store) ListByGuild(ctx context.Context, guildID string) ([]*entities.Character, error) {
	return s.repo.ListByGuild(ctx, guildID)
}

// Replace deletes a guild's characters and writes the given set in their
// place. Used by GM restore.
func (s *Store) Replace(ctx context.Context, guildID string, chars []*entities.Character) error {
	existing, err := s.repo.ListByGuild(ctx, guildID)
	if err != nil {
		return err
	}

	for _, char := range existing {
		if err := s.repo.Delete(ctx, char.ID); err != nil {
			return err
		}
	}

	for _, char := range chars {
		if err := s.repo.Set(ctx, char); err != nil {
			return err
		}
	}

	return nil
}
