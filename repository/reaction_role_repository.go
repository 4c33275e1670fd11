package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"warden/database"
	"warden/models"
	"warden/service"

	"github.com/jackc/pgx/v5"
)

// ReactionRoleRepository implements the ReactionRoleRepository interface
type ReactionRoleRepository struct {
	q queryable
}

// NewReactionRoleRepository creates a new reaction role repository
func NewReactionRoleRepository(db *database.DB) *ReactionRoleRepository {
	return &ReactionRoleRepository{q: db.Pool}
}

// newReactionRoleRepositoryWithTx creates a new reaction role repository with a transaction
func newReactionRoleRepositoryWithTx(tx queryable) *ReactionRoleRepository {
	return &ReactionRoleRepository{q: tx}
}

// Create inserts a new reaction role definition
func (r *ReactionRoleRepository) Create(ctx context.Context, rr *models.ReactionRole) error {
	messageJSON, err := json.Marshal(rr.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}
	triggersJSON, err := json.Marshal(rr.Triggers)
	if err != nil {
		return fmt.Errorf("failed to marshal triggers: %w", err)
	}

	query := `
		INSERT INTO reaction_roles (id, guild_id, unique_id, name, message, triggers, message_id, channel_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = r.q.QueryRow(ctx, query,
		rr.ID,
		rr.GuildID,
		rr.UniqueID,
		rr.Name,
		messageJSON,
		triggersJSON,
		rr.MessageID,
		rr.ChannelID,
	).Scan(&rr.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create reaction role %s: %w", rr.ID, err)
	}

	return nil
}

// GetByID retrieves a reaction role definition, or nil if it does not exist
func (r *ReactionRoleRepository) GetByID(ctx context.Context, id string) (*models.ReactionRole, error) {
	query := `
		SELECT id, guild_id, unique_id, name, message, triggers, message_id, channel_id, created_at
		FROM reaction_roles
		WHERE id = $1
	`

	rr, err := scanReactionRole(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction role %s: %w", id, err)
	}

	return rr, nil
}

// Update overwrites name, message payload and triggers
func (r *ReactionRoleRepository) Update(ctx context.Context, rr *models.ReactionRole) error {
	messageJSON, err := json.Marshal(rr.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}
	triggersJSON, err := json.Marshal(rr.Triggers)
	if err != nil {
		return fmt.Errorf("failed to marshal triggers: %w", err)
	}

	query := `
		UPDATE reaction_roles
		SET name = $2,
		    message = $3,
		    triggers = $4
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, rr.ID, rr.Name, messageJSON, triggersJSON)
	if err != nil {
		return fmt.Errorf("failed to update reaction role %s: %w", rr.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reaction role %s: %w", rr.ID, service.ErrNotFound)
	}

	return nil
}

// SetBinding sets or clears message_id and channel_id in one statement so the
// both-or-neither invariant can never be observed half-written.
func (r *ReactionRoleRepository) SetBinding(ctx context.Context, id string, messageID, channelID *string) error {
	query := `
		UPDATE reaction_roles
		SET message_id = $2,
		    channel_id = $3
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id, messageID, channelID)
	if err != nil {
		return fmt.Errorf("failed to set binding for reaction role %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reaction role %s: %w", id, service.ErrNotFound)
	}

	return nil
}

// Delete removes a reaction role definition. Missing rows are not an error.
func (r *ReactionRoleRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM reaction_roles
		WHERE id = $1
	`

	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete reaction role %s: %w", id, err)
	}

	return nil
}

// ListByGuild returns a guild's reaction role definitions in creation order
func (r *ReactionRoleRepository) ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error) {
	query := `
		SELECT id, guild_id, unique_id, name, message, triggers, message_id, channel_id, created_at
		FROM reaction_roles
		WHERE guild_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reaction roles for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var list []*models.ReactionRole
	for rows.Next() {
		rr, err := scanReactionRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reaction role: %w", err)
		}
		list = append(list, rr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reaction roles: %w", err)
	}

	return list, nil
}

// scanReactionRole scans one row into a ReactionRole, decoding the jsonb
// message payload and trigger list.
func scanReactionRole(row pgx.Row) (*models.ReactionRole, error) {
	var rr models.ReactionRole
	var messageJSON, triggersJSON []byte

	err := row.Scan(
		&rr.ID,
		&rr.GuildID,
		&rr.UniqueID,
		&rr.Name,
		&messageJSON,
		&triggersJSON,
		&rr.MessageID,
		&rr.ChannelID,
		&rr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(messageJSON, &rr.Message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message payload: %w", err)
	}
	if err := json.Unmarshal(triggersJSON, &rr.Triggers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal triggers: %w", err)
	}

	return &rr, nil
}
