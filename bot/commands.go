package bot

import (
	"fmt"

	"warden/models"

	"github.com/bwmarrin/discordgo"
)

// BuiltinCommands is the read-only registry of built-in commands, supplied
// once per process. The dashboard groups these by category; the engine only
// ever reads name and category.
var BuiltinCommands = []models.Command{
	{Name: "ping", Category: "utility", Description: "Check the bot's gateway latency"},
	{Name: "serverinfo", Category: "utility", Description: "Show information about this server"},
	{Name: "avatar", Category: "utility", Description: "Show a user's avatar"},
	{Name: "ban", Category: "moderation", Description: "Ban a member from the server"},
	{Name: "kick", Category: "moderation", Description: "Kick a member from the server"},
	{Name: "warn", Category: "moderation", Description: "Warn a member"},
	{Name: "reactionroles", Category: "roles", Description: "List this server's reaction role setups"},
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	targetUser := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "Target user",
		Required:    true,
	}
	reason := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Reason",
		Required:    false,
	}
	moderatePerm := int64(discordgo.PermissionModerateMembers)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check the bot's gateway latency",
		},
		{
			Name:        "serverinfo",
			Description: "Show information about this server",
		},
		{
			Name:        "avatar",
			Description: "Show a user's avatar",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Target user",
					Required:    false,
				},
			},
		},
		{
			Name:                     "ban",
			Description:              "Ban a member from the server",
			Options:                  []*discordgo.ApplicationCommandOption{targetUser, reason},
			DefaultMemberPermissions: &moderatePerm,
		},
		{
			Name:                     "kick",
			Description:              "Kick a member from the server",
			Options:                  []*discordgo.ApplicationCommandOption{targetUser, reason},
			DefaultMemberPermissions: &moderatePerm,
		},
		{
			Name:                     "warn",
			Description:              "Warn a member",
			Options:                  []*discordgo.ApplicationCommandOption{targetUser, reason},
			DefaultMemberPermissions: &moderatePerm,
		},
		{
			Name:        "reactionroles",
			Description: "List this server's reaction role setups",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	return nil
}
