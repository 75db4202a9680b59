package economy

import (
	"context"
	"time"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/rulebook"
	"github.com/marbleisles/livia-bot/internal/storage"
)

// Service defines the economy service interface. GM privilege is checked by
// the command layer before the Gm* methods are called; this service trusts
// its callers.
type Service interface {
	// Buy debits the wallet and stocks the inventory, atomically
	Buy(ctx context.Context, guildID, ownerID, item string, qty int) (*PurchaseResult, error)

	// GmGive adds currency to a character's wallet
	GmGive(ctx context.Context, guildID, ownerID string, amount int) (*entities.Character, error)

	// GmAddItem grants inventory outside the shop catalog rules
	GmAddItem(ctx context.Context, guildID, ownerID, item string, qty int) (*entities.Character, error)

	// Export snapshots all characters in a guild
	Export(ctx context.Context, guildID string) (*Backup, error)

	// Restore replaces a guild's characters with a snapshot's contents.
	// Returns the number of characters restored.
	Restore(ctx context.Context, guildID string, backup *Backup) (int, error)
}

// PurchaseResult reports a completed purchase
type PurchaseResult struct {
	Character *entities.Character
	Item      string
	Qty       int
	Cost      int
}

// Backup is a point-in-time snapshot of a guild's characters
type Backup struct {
	GuildID    string                `json:"guild_id"`
	ExportedAt time.Time             `json:"exported_at"`
	Characters []*entities.Character `json:"characters"`
}

// service implements the Service interface
type service struct {
	store *storage.Store
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Store *storage.Store // Required
}

// NewService creates a new economy service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Store == nil {
		panic("store is required")
	}

	return &service{
		store: cfg.Store,
	}
}

// Buy debits the wallet and stocks the inventory, atomically
func (s *service) Buy(ctx context.Context, guildID, ownerID, item string, qty int) (*PurchaseResult, error) {
	name := rulebook.Slug(item)

	price, ok := rulebook.Price(name)
	if !ok {
		return nil, liviaerr.UnknownItemf("'%s' is not in stock", name).
			WithMeta("item", name)
	}
	if qty <= 0 {
		return nil, liviaerr.InvalidAmountf("quantity must be positive, got %d", qty)
	}

	cost := price * qty

	// Both the debit and the stock happen inside one mutator: the store only
	// persists when the mutator succeeds, so the purchase is all-or-nothing.
	char, err := s.store.Update(ctx, guildID, ownerID, func(c *entities.Character) error {
		if c.Wallet < cost {
			return liviaerr.InsufficientFundsf("%d %s needed, wallet holds %d", cost, rulebook.CurrencyName, c.Wallet).
				WithMeta("cost", cost).
				WithMeta("wallet", c.Wallet)
		}

		c.Wallet -= cost
		c.AddItem(name, qty)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Character: char,
		Item:      name,
		Qty:       qty,
		Cost:      cost,
	}, nil
}

// GmGive adds currency to a character's wallet
func (s *service) GmGive(ctx context.Context, guildID, ownerID string, amount int) (*entities.Character, error) {
	if amount <= 0 {
		return nil, liviaerr.InvalidAmountf("grant amount must be positive, got %d", amount)
	}

	return s.store.Update(ctx, guildID, ownerID, func(c *entities.Character) error {
		c.Wallet += amount
		return nil
	})
}

// GmAddItem grants inventory; the item need not be in the shop catalog
func (s *service) GmAddItem(ctx context.Context, guildID, ownerID, item string, qty int) (*entities.Character, error) {
	name := rulebook.Slug(item)
	if name == "" {
		return nil, liviaerr.InvalidArgument("item name is required")
	}
	if qty <= 0 {
		return nil, liviaerr.InvalidAmountf("quantity must be positive, got %d", qty)
	}

	return s.store.Update(ctx, guildID, ownerID, func(c *entities.Character) error {
		c.AddItem(name, qty)
		return nil
	})
}

// Export snapshots all characters in a guild
func (s *service) Export(ctx context.Context, guildID string) (*Backup, error) {
	if guildID == "" {
		return nil, liviaerr.InvalidArgument("guild ID is required")
	}

	chars, err := s.store.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, liviaerr.Wrap(err, "failed to export guild characters").
			WithMeta("guild_id", guildID)
	}

	return &Backup{
		GuildID:    guildID,
		ExportedAt: time.Now().UTC(),
		Characters: chars,
	}, nil
}

// Restore replaces a guild's characters with a snapshot's contents
func (s *service) Restore(ctx context.Context, guildID string, backup *Backup) (int, error) {
	if guildID == "" {
		return 0, liviaerr.InvalidArgument("guild ID is required")
	}
	if backup == nil {
		return 0, liviaerr.InvalidArgument("backup cannot be nil")
	}

	// Only restore records that belong to this guild; a snapshot from
	// another server must not leak characters across.
	var chars []*entities.Character
	for _, char := range backup.Characters {
		if char != nil && char.GuildID == guildID {
			chars = append(chars, char)
		}
	}

	if err := s.store.Replace(ctx, guildID, chars); err != nil {
		return 0, liviaerr.Wrap(err, "failed to restore guild characters").
			WithMeta("guild_id", guildID)
	}

	return len(chars), nil
}
