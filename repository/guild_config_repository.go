package repository

import (
	"context"
	"fmt"

	"warden/database"
	"warden/models"
	"warden/service"

	"github.com/jackc/pgx/v5"
)

// GuildConfigRepository implements the GuildConfigRepository interface
type GuildConfigRepository struct {
	q queryable
}

// NewGuildConfigRepository creates a new guild config repository
func NewGuildConfigRepository(db *database.DB) *GuildConfigRepository {
	return &GuildConfigRepository{q: db.Pool}
}

// newGuildConfigRepositoryWithTx creates a new guild config repository with a transaction
func newGuildConfigRepositoryWithTx(tx queryable) *GuildConfigRepository {
	return &GuildConfigRepository{q: tx}
}

// Get retrieves a guild config by guild ID, or nil if no row exists
func (r *GuildConfigRepository) Get(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	query := `
		SELECT id, disabled_commands, logs_channel_id, enabled_logs, reaction_roles
		FROM guild_configs
		WHERE id = $1
	`

	var config models.GuildConfig
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&config.ID,
		&config.DisabledCommands,
		&config.LogsChannelID,
		&config.EnabledLogs,
		&config.ReactionRolesEnabled,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config %s: %w", guildID, err)
	}

	return &config, nil
}

// GetOrCreate retrieves a guild config, inserting a row with schema defaults
// if none exists. The insert uses ON CONFLICT DO NOTHING so losing the race to
// a concurrent request is an ordinary no-op, not an error that would abort the
// surrounding transaction; the winner's row is read afterwards.
func (r *GuildConfigRepository) GetOrCreate(ctx context.Context, guildID string) (*models.GuildConfig, bool, error) {
	config, err := r.Get(ctx, guildID)
	if err != nil {
		return nil, false, err
	}
	if config != nil {
		return config, false, nil
	}

	insertQuery := `
		INSERT INTO guild_configs (id, disabled_commands, enabled_logs, reaction_roles)
		VALUES ($1, '{}', $2, FALSE)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, disabled_commands, logs_channel_id, enabled_logs, reaction_roles
	`

	var created models.GuildConfig
	err = r.q.QueryRow(ctx, insertQuery, guildID, models.DefaultEnabledLogs).Scan(
		&created.ID,
		&created.DisabledCommands,
		&created.LogsChannelID,
		&created.EnabledLogs,
		&created.ReactionRolesEnabled,
	)

	if err == nil {
		return &created, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("failed to create guild config %s: %w", guildID, err)
	}

	// No row returned: a concurrent request inserted first. Read its row.
	config, err = r.Get(ctx, guildID)
	if err != nil {
		return nil, false, err
	}
	if config == nil {
		return nil, false, fmt.Errorf("guild config %s vanished after insert conflict", guildID)
	}
	return config, false, nil
}

// UpdateDisabledCommands overwrites the stored disabled-command set
func (r *GuildConfigRepository) UpdateDisabledCommands(ctx context.Context, guildID string, disabled []string) error {
	query := `
		UPDATE guild_configs
		SET disabled_commands = $2
		WHERE id = $1
	`

	if disabled == nil {
		disabled = []string{}
	}

	result, err := r.q.Exec(ctx, query, guildID, disabled)
	if err != nil {
		return fmt.Errorf("failed to update disabled commands for guild %s: %w", guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config %s: %w", guildID, service.ErrNotFound)
	}

	return nil
}

// SetField updates a single config column. The field enum is closed, so the
// column name never comes from caller input.
func (r *GuildConfigRepository) SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error {
	var query string
	switch field {
	case models.FieldLogsChannelID:
		query = `UPDATE guild_configs SET logs_channel_id = $2 WHERE id = $1`
	case models.FieldEnabledLogs:
		query = `UPDATE guild_configs SET enabled_logs = $2 WHERE id = $1`
	case models.FieldReactionRolesEnabled:
		query = `UPDATE guild_configs SET reaction_roles = $2 WHERE id = $1`
	default:
		return fmt.Errorf("unknown guild config field %q", field)
	}

	result, err := r.q.Exec(ctx, query, guildID, value)
	if err != nil {
		return fmt.Errorf("failed to set %s for guild %s: %w", field, guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config %s: %w", guildID, service.ErrNotFound)
	}

	return nil
}
