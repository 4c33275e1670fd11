package bot

import (
	"warden/service"

	"github.com/bwmarrin/discordgo"
)

// stateLookup implements service.GuildLookup over the discordgo state cache.
// All lookups are in-memory; an unknown guild yields nil, which the dashboard
// treats as a legitimate "bot is not in this guild".
type stateLookup struct {
	session *discordgo.Session
}

func (l *stateLookup) Guild(guildID string) *service.GuildInfo {
	guild, err := l.session.State.Guild(guildID)
	if err != nil {
		return nil
	}
	info := guildInfo(guild)
	return &info
}

func (l *stateLookup) Channels(guildID string) []service.ChannelInfo {
	guild, err := l.session.State.Guild(guildID)
	if err != nil {
		return nil
	}

	channels := make([]service.ChannelInfo, 0, len(guild.Channels))
	for _, ch := range guild.Channels {
		channels = append(channels, service.ChannelInfo{
			ID:       ch.ID,
			Name:     ch.Name,
			Type:     int(ch.Type),
			Position: ch.Position,
		})
	}
	return channels
}

func (l *stateLookup) Roles(guildID string) []service.RoleInfo {
	guild, err := l.session.State.Guild(guildID)
	if err != nil {
		return nil
	}

	roles := make([]service.RoleInfo, 0, len(guild.Roles))
	for _, role := range guild.Roles {
		// Managed roles and @everyone cannot be granted by reaction
		if role.Managed || role.ID == guildID {
			continue
		}
		roles = append(roles, roleInfo(role))
	}
	return roles
}

func (l *stateLookup) Role(guildID, roleID string) *service.RoleInfo {
	role, err := l.session.State.Role(guildID, roleID)
	if err != nil {
		return nil
	}
	info := roleInfo(role)
	return &info
}

func (l *stateLookup) GuildsIn(ids []string) []service.GuildInfo {
	guilds := make([]service.GuildInfo, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if guild, err := l.session.State.Guild(id); err == nil {
			guilds = append(guilds, guildInfo(guild))
		}
	}
	return guilds
}

func guildInfo(guild *discordgo.Guild) service.GuildInfo {
	return service.GuildInfo{
		ID:          guild.ID,
		Name:        guild.Name,
		Icon:        guild.Icon,
		MemberCount: guild.MemberCount,
	}
}

func roleInfo(role *discordgo.Role) service.RoleInfo {
	return service.RoleInfo{
		ID:       role.ID,
		Name:     role.Name,
		Color:    role.Color,
		Position: role.Position,
		Managed:  role.Managed,
	}
}
