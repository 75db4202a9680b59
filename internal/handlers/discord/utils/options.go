package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption safely retrieves a command option by name from interaction data
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i.ApplicationCommandData().Options == nil {
		return nil
	}

	options := i.ApplicationCommandData().Options

	// Navigate through subcommand groups and subcommands
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}

		if len(options[0].Options) > 0 {
			options = options[0].Options
		} else {
			break
		}
	}

	return nil
}

// GetStringOption safely retrieves a string option value by name
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption safely retrieves an integer option value by name
func GetIntOption(i *discordgo.InteractionCreate, name string) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return 0
	}
	return opt.IntValue()
}

// GetUserOption safely retrieves a user option's ID by name
func GetUserOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	if opt.Type != discordgo.ApplicationCommandOptionUser {
		return ""
	}
	return opt.Value.(string)
}

// GetAttachmentOption resolves an attachment option to its metadata
func GetAttachmentOption(i *discordgo.InteractionCreate, name string) *discordgo.MessageAttachment {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return nil
	}

	id, ok := opt.Value.(string)
	if !ok {
		return nil
	}

	resolved := i.ApplicationCommandData().Resolved
	if resolved == nil || resolved.Attachments == nil {
		return nil
	}
	return resolved.Attachments[id]
}

// MemberIsGM reports whether the invoking member counts as a game master.
// Administrators and server managers qualify; the services trust this flag.
func MemberIsGM(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	perms := i.Member.Permissions
	return perms&discordgo.PermissionAdministrator != 0 ||
		perms&discordgo.PermissionManageServer != 0
}
