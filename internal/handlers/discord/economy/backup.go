package economy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/marbleisles/livia-bot/internal/handlers/discord/utils"
	economyService "github.com/marbleisles/livia-bot/internal/services/economy"
)

// maxBackupBytes caps the size of a restore attachment we will download
const maxBackupBytes = 8 << 20

// BackupHandler handles the GM-only /gm_backup and /gm_restore commands
type BackupHandler struct {
	economyService economyService.Service
	httpClient     *http.Client
}

// BackupHandlerConfig holds configuration for the backup handler
type BackupHandlerConfig struct {
	EconomyService economyService.Service
	HTTPClient     *http.Client // Optional, defaults to a 30s-timeout client
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(cfg *BackupHandlerConfig) *BackupHandler {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &BackupHandler{
		economyService: cfg.EconomyService,
		httpClient:     client,
	}
}

// HandleBackup processes the gm_backup command
func (h *BackupHandler) HandleBackup(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !utils.MemberIsGM(i) {
		return respondWithError(s, i, "Only GMs can take backups.")
	}

	backup, err := h.economyService.Export(context.Background(), i.GuildID)
	if err != nil {
		log.Printf("Error exporting guild %s: %v", i.GuildID, err)
		return respondWithError(s, i, "Something went wrong exporting characters.")
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		log.Printf("Error encoding backup for guild %s: %v", i.GuildID, err)
		return respondWithError(s, i, "Something went wrong encoding the backup.")
	}

	filename := fmt.Sprintf("livia-backup-%s.json", backup.ExportedAt.Format("2006-01-02"))

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("📦 %d character(s) exported.", len(backup.Characters)),
			Flags:   discordgo.MessageFlagsEphemeral,
			Files: []*discordgo.File{
				{
					Name:        filename,
					ContentType: "application/json",
					Reader:      bytes.NewReader(data),
				},
			},
		},
	})
}

// HandleRestore processes the gm_restore command
func (h *BackupHandler) HandleRestore(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !utils.MemberIsGM(i) {
		return respondWithError(s, i, "Only GMs can restore backups.")
	}

	attachment := utils.GetAttachmentOption(i, "file")
	if attachment == nil {
		return respondWithError(s, i, "Attach a backup file taken with /gm_backup.")
	}

	backup, err := h.fetchBackup(attachment.URL)
	if err != nil {
		log.Printf("Error fetching backup for guild %s: %v", i.GuildID, err)
		return respondWithError(s, i, "Couldn't read that file. Is it a /gm_backup export?")
	}

	count, err := h.economyService.Restore(context.Background(), i.GuildID, backup)
	if err != nil {
		log.Printf("Error restoring guild %s: %v", i.GuildID, err)
		return respondWithError(s, i, "Something went wrong restoring characters.")
	}

	return respondEphemeral(s, i, fmt.Sprintf("📦 Restored %d character(s).", count))
}

func (h *BackupHandler) fetchBackup(url string) (*economyService.Backup, error) {
	resp, err := h.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching attachment", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBackupBytes))
	if err != nil {
		return nil, err
	}

	var backup economyService.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, err
	}
	return &backup, nil
}
