package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// commandTarget extracts the user and reason options of a moderation command.
func commandTarget(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.User, string) {
	var user *discordgo.User
	reason := "No reason given"

	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "user":
			user = opt.UserValue(s)
		case "reason":
			reason = opt.StringValue()
		}
	}

	return user, reason
}

func (b *Bot) handleBan(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user, reason := commandTarget(s, i)
	if user == nil {
		b.respondEphemeral(s, i, "No target user provided.")
		return
	}

	if err := s.GuildBanCreateWithReason(i.GuildID, user.ID, reason, 0); err != nil {
		log.WithFields(log.Fields{
			"guildID": i.GuildID,
			"userID":  user.ID,
			"error":   err,
		}).Error("Failed to ban member")
		b.respondEphemeral(s, i, fmt.Sprintf("Could not ban %s.", user.Username))
		return
	}

	b.respondEphemeral(s, i, fmt.Sprintf("Banned %s. Reason: %s", user.Username, reason))
}

func (b *Bot) handleKick(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user, reason := commandTarget(s, i)
	if user == nil {
		b.respondEphemeral(s, i, "No target user provided.")
		return
	}

	if err := s.GuildMemberDeleteWithReason(i.GuildID, user.ID, reason); err != nil {
		log.WithFields(log.Fields{
			"guildID": i.GuildID,
			"userID":  user.ID,
			"error":   err,
		}).Error("Failed to kick member")
		b.respondEphemeral(s, i, fmt.Sprintf("Could not kick %s.", user.Username))
		return
	}

	b.respondEphemeral(s, i, fmt.Sprintf("Kicked %s. Reason: %s", user.Username, reason))
}

func (b *Bot) handleWarn(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user, reason := commandTarget(s, i)
	if user == nil {
		b.respondEphemeral(s, i, "No target user provided.")
		return
	}

	channel, err := s.UserChannelCreate(user.ID)
	if err == nil {
		guildName := i.GuildID
		if guild, gErr := s.State.Guild(i.GuildID); gErr == nil {
			guildName = guild.Name
		}
		_, err = s.ChannelMessageSend(channel.ID, fmt.Sprintf("You were warned in %s: %s", guildName, reason))
	}
	if err != nil {
		// DMs may be closed; the warning still counts
		log.WithFields(log.Fields{
			"userID": user.ID,
			"error":  err,
		}).Warn("Could not deliver warning DM")
	}

	b.respondEphemeral(s, i, fmt.Sprintf("Warned %s. Reason: %s", user.Username, reason))
}

func (b *Bot) handleReactionRoles(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	list, err := b.registry.ListByGuild(ctx, i.GuildID)
	if err != nil {
		log.WithFields(log.Fields{
			"guildID": i.GuildID,
			"error":   err,
		}).Error("Failed to list reaction roles")
		b.respondEphemeral(s, i, "Something went wrong, try again later.")
		return
	}

	if len(list) == 0 {
		b.respondEphemeral(s, i, "This server has no reaction role setups yet.")
		return
	}

	var lines []string
	for _, rr := range list {
		state := "unbound"
		if rr.Bound() {
			state = fmt.Sprintf("bound to message %s", *rr.MessageID)
		}
		lines = append(lines, fmt.Sprintf("• **%s**: %d triggers, %s", rr.Name, len(rr.Triggers), state))
	}

	b.respondEphemeral(s, i, strings.Join(lines, "\n"))
}
