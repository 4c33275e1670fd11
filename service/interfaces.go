package service

import (
	"context"

	"warden/events"
	"warden/models"
)

// GuildConfigRepository defines data access for per-guild configuration rows.
type GuildConfigRepository interface {
	// Get retrieves a guild config, or nil if no row exists.
	Get(ctx context.Context, guildID string) (*models.GuildConfig, error)

	// GetOrCreate retrieves a guild config, inserting a row with schema
	// defaults if none exists. The created flag reports whether this call
	// inserted the row. A concurrent insert losing the uniqueness race is
	// resolved by re-read, never surfaced as an error.
	GetOrCreate(ctx context.Context, guildID string) (config *models.GuildConfig, created bool, err error)

	// UpdateDisabledCommands overwrites the stored disabled-command set.
	UpdateDisabledCommands(ctx context.Context, guildID string, disabled []string) error

	// SetField updates a single config column.
	SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error
}

// ReactionRoleRepository defines data access for reaction-role definitions.
type ReactionRoleRepository interface {
	// Create inserts a new definition.
	Create(ctx context.Context, rr *models.ReactionRole) error

	// GetByID retrieves a definition, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*models.ReactionRole, error)

	// Update overwrites name, message payload and triggers.
	Update(ctx context.Context, rr *models.ReactionRole) error

	// SetBinding sets or clears the message binding. Both identifiers are
	// written in one statement so the both-or-neither invariant holds.
	SetBinding(ctx context.Context, id string, messageID, channelID *string) error

	// Delete removes a definition. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// ListByGuild returns a guild's definitions in creation order.
	ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error)
}

// ConfigStore owns the lifecycle of guild configuration rows.
type ConfigStore interface {
	// GetOrCreate returns the guild's config, creating it with defaults on
	// first access. Never returns "not found".
	GetOrCreate(ctx context.Context, guildID string) (*models.GuildConfig, error)

	// UpdateDisabledCommands reconciles the requested enable/disable lists
	// against the stored set and persists the result, returning the new set.
	UpdateDisabledCommands(ctx context.Context, guildID string, enable, disable []string) ([]string, error)

	// SetField updates a single config field.
	SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error
}

// ReactionRoleRegistry owns CRUD and structural validation of reaction-role
// definitions.
type ReactionRoleRegistry interface {
	Create(ctx context.Context, guildID, name string, payload models.MessagePayload, triggers []models.ReactionTrigger) (*models.ReactionRole, error)
	Update(ctx context.Context, id string, patch models.ReactionRolePatch) (*models.ReactionRole, error)
	BindMessage(ctx context.Context, id, messageID, channelID string) error
	Unbind(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error)
}

// GuildLookup is the read-only collaborator over the live gateway cache.
// Implementations never hit storage; "not found" is a legitimate outcome
// surfaced as a nil result, not an error.
type GuildLookup interface {
	// Guild returns guild metadata, or nil if the bot is not in the guild.
	Guild(guildID string) *GuildInfo

	// Channels returns a guild's channels, or nil if the guild is unknown.
	Channels(guildID string) []ChannelInfo

	// Roles returns a guild's assignable roles (managed roles and @everyone
	// filtered out), or nil if the guild is unknown.
	Roles(guildID string) []RoleInfo

	// Role returns a single role, or nil if guild or role is unknown.
	Role(guildID, roleID string) *RoleInfo

	// GuildsIn filters ids down to guilds the bot is currently in.
	GuildsIn(ids []string) []GuildInfo
}

// GuildInfo is the slice of gateway guild metadata the dashboard needs.
type GuildInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	MemberCount int    `json:"memberCount"`
}

// ChannelInfo describes one guild channel.
type ChannelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     int    `json:"type"`
	Position int    `json:"position"`
}

// RoleInfo describes one guild role.
type RoleInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Position int    `json:"position"`
	Managed  bool   `json:"managed"`
}

// UnitOfWork bundles repository access with a transaction boundary. Events
// published during the transaction are flushed only after a successful commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GuildConfigRepository() GuildConfigRepository
	ReactionRoleRepository() ReactionRoleRepository

	// Publish stages an event for emission after commit.
	Publish(event events.Event)
}

// UnitOfWorkFactory creates units of work.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
