package models

import "strings"

// DefaultEnabledLogs is the set of logging categories enabled for a guild
// that has never been configured.
var DefaultEnabledLogs = []string{"moderation", "memberAdd"}

// GuildConfig represents the per-guild configuration row. Exactly one row
// exists per guild once any dashboard read has happened for it; creation is
// lazy via GetOrCreate.
type GuildConfig struct {
	ID                   string   `db:"id"` // guild id
	DisabledCommands     []string `db:"disabled_commands"`
	LogsChannelID        *string  `db:"logs_channel_id"`
	EnabledLogs          []string `db:"enabled_logs"`
	ReactionRolesEnabled bool     `db:"reaction_roles"`
}

// ConfigField identifies a single directly-updatable GuildConfig column.
type ConfigField string

const (
	FieldLogsChannelID        ConfigField = "logs_channel_id"
	FieldEnabledLogs          ConfigField = "enabled_logs"
	FieldReactionRolesEnabled ConfigField = "reaction_roles"
)

// IsCommandDisabled reports whether the named command is gated off for this
// guild. The stored set is lowercase, so the name is normalized before lookup.
func (c *GuildConfig) IsCommandDisabled(name string) bool {
	name = strings.ToLower(name)
	for _, disabled := range c.DisabledCommands {
		if disabled == name {
			return true
		}
	}
	return false
}
