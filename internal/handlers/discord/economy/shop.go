package economy

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/marbleisles/livia-bot/internal/rulebook"
)

// ShopHandler handles the /shop command
type ShopHandler struct{}

// NewShopHandler creates a new shop handler
func NewShopHandler() *ShopHandler {
	return &ShopHandler{}
}

// Handle processes the shop command
func (h *ShopHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var sb strings.Builder
	for _, item := range rulebook.CatalogItems() {
		price, _ := rulebook.Price(item)
		sb.WriteString(fmt.Sprintf("**%s** — %d %s\n", item, price, rulebook.CurrencyName))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏪 Marble Isles General Store",
		Description: sb.String(),
		Color:       colorShop,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Buy with /buy item:<name>"},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
