package service

import (
	"context"
	"fmt"
	"strings"

	"warden/events"
	"warden/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// reactionRoleRegistry implements the ReactionRoleRegistry interface
type reactionRoleRegistry struct {
	uowFactory UnitOfWorkFactory
}

// NewReactionRoleRegistry creates a new reaction role registry
func NewReactionRoleRegistry(uowFactory UnitOfWorkFactory) ReactionRoleRegistry {
	return &reactionRoleRegistry{
		uowFactory: uowFactory,
	}
}

// Create validates and stores a new reaction-role definition. The definition
// starts unbound; BindMessage attaches it once the message has been posted.
func (s *reactionRoleRegistry) Create(ctx context.Context, guildID, name string, payload models.MessagePayload, triggers []models.ReactionTrigger) (*models.ReactionRole, error) {
	if guildID == "" {
		return nil, NewValidationError("guildId", "must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if err := validateTriggers(triggers); err != nil {
		return nil, err
	}

	rr := &models.ReactionRole{
		ID:       uuid.NewString(),
		GuildID:  guildID,
		UniqueID: uuid.NewString(),
		Name:     name,
		Message:  payload,
		Triggers: triggers,
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, NewStorageError("create reaction role", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.ReactionRoleRepository().Create(ctx, rr); err != nil {
		return nil, NewStorageError("create reaction role", err)
	}

	uow.Publish(events.ReactionRoleCreatedEvent{
		ReactionRoleID: rr.ID,
		GuildID:        guildID,
	})

	if err := uow.Commit(); err != nil {
		return nil, NewStorageError("create reaction role", err)
	}

	log.WithFields(log.Fields{
		"guildID":        guildID,
		"reactionRoleID": rr.ID,
		"triggerCount":   len(triggers),
	}).Info("Created reaction role definition")

	return rr, nil
}

// Update applies a partial update to name, message payload and triggers.
// Triggers are re-validated exactly as in Create.
func (s *reactionRoleRegistry) Update(ctx context.Context, id string, patch models.ReactionRolePatch) (*models.ReactionRole, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if patch.Triggers != nil {
		if err := validateTriggers(patch.Triggers); err != nil {
			return nil, err
		}
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, NewStorageError("update reaction role", err)
	}
	defer uow.Rollback()

	rr, err := uow.ReactionRoleRepository().GetByID(ctx, id)
	if err != nil {
		return nil, NewStorageError("update reaction role", err)
	}
	if rr == nil {
		return nil, fmt.Errorf("reaction role %s: %w", id, ErrNotFound)
	}

	if patch.Name != nil {
		rr.Name = *patch.Name
	}
	if patch.Message != nil {
		rr.Message = *patch.Message
	}
	if patch.Triggers != nil {
		rr.Triggers = patch.Triggers
	}

	if err := uow.ReactionRoleRepository().Update(ctx, rr); err != nil {
		return nil, NewStorageError("update reaction role", err)
	}

	uow.Publish(events.ReactionRoleUpdatedEvent{
		ReactionRoleID: rr.ID,
		GuildID:        rr.GuildID,
		Bound:          rr.Bound(),
	})

	if err := uow.Commit(); err != nil {
		return nil, NewStorageError("update reaction role", err)
	}

	return rr, nil
}

// BindMessage transitions an unbound definition to bound. Binding an already
// bound definition fails; the caller must unbind first.
func (s *reactionRoleRegistry) BindMessage(ctx context.Context, id, messageID, channelID string) error {
	if messageID == "" {
		return NewValidationError("messageId", "must not be empty")
	}
	if channelID == "" {
		return NewValidationError("channelId", "must not be empty")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NewStorageError("bind reaction role", err)
	}
	defer uow.Rollback()

	rr, err := uow.ReactionRoleRepository().GetByID(ctx, id)
	if err != nil {
		return NewStorageError("bind reaction role", err)
	}
	if rr == nil {
		return fmt.Errorf("reaction role %s: %w", id, ErrNotFound)
	}
	if rr.Bound() {
		return fmt.Errorf("reaction role %s: %w", id, ErrAlreadyBound)
	}

	if err := uow.ReactionRoleRepository().SetBinding(ctx, id, &messageID, &channelID); err != nil {
		return NewStorageError("bind reaction role", err)
	}

	uow.Publish(events.ReactionRoleBoundEvent{
		ReactionRoleID: id,
		GuildID:        rr.GuildID,
		MessageID:      messageID,
		ChannelID:      channelID,
	})

	if err := uow.Commit(); err != nil {
		return NewStorageError("bind reaction role", err)
	}

	log.WithFields(log.Fields{
		"reactionRoleID": id,
		"messageID":      messageID,
		"channelID":      channelID,
	}).Info("Bound reaction role to message")

	return nil
}

// Unbind clears the message binding, returning the definition to the unbound
// state. Both identifiers are cleared atomically.
func (s *reactionRoleRegistry) Unbind(ctx context.Context, id string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NewStorageError("unbind reaction role", err)
	}
	defer uow.Rollback()

	rr, err := uow.ReactionRoleRepository().GetByID(ctx, id)
	if err != nil {
		return NewStorageError("unbind reaction role", err)
	}
	if rr == nil {
		return fmt.Errorf("reaction role %s: %w", id, ErrNotFound)
	}

	if err := uow.ReactionRoleRepository().SetBinding(ctx, id, nil, nil); err != nil {
		return NewStorageError("unbind reaction role", err)
	}

	uow.Publish(events.ReactionRoleUnboundEvent{
		ReactionRoleID: id,
		GuildID:        rr.GuildID,
	})

	if err := uow.Commit(); err != nil {
		return NewStorageError("unbind reaction role", err)
	}

	return nil
}

// Delete removes a definition. Idempotent: deleting a nonexistent id succeeds
// because the end state is already achieved.
func (s *reactionRoleRegistry) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NewStorageError("delete reaction role", err)
	}
	defer uow.Rollback()

	rr, err := uow.ReactionRoleRepository().GetByID(ctx, id)
	if err != nil {
		return NewStorageError("delete reaction role", err)
	}
	if rr == nil {
		// Already gone, nothing to do.
		return nil
	}

	if err := uow.ReactionRoleRepository().Delete(ctx, id); err != nil {
		return NewStorageError("delete reaction role", err)
	}

	uow.Publish(events.ReactionRoleDeletedEvent{
		ReactionRoleID: id,
		GuildID:        rr.GuildID,
	})

	if err := uow.Commit(); err != nil {
		return NewStorageError("delete reaction role", err)
	}

	return nil
}

// ListByGuild returns a guild's definitions in creation order.
func (s *reactionRoleRegistry) ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, NewStorageError("list reaction roles", err)
	}
	defer uow.Rollback()

	list, err := uow.ReactionRoleRepository().ListByGuild(ctx, guildID)
	if err != nil {
		return nil, NewStorageError("list reaction roles", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, NewStorageError("list reaction roles", err)
	}

	if list == nil {
		list = []*models.ReactionRole{}
	}

	return list, nil
}

// validateTriggers enforces the structural rules every trigger list must
// satisfy: non-empty list, non-empty fields, unique emoji per definition.
func validateTriggers(triggers []models.ReactionTrigger) error {
	if len(triggers) == 0 {
		return NewValidationError("triggers", "at least one trigger is required")
	}

	seen := make(map[string]struct{}, len(triggers))
	for i, trigger := range triggers {
		if trigger.Emoji == "" {
			return NewValidationError("triggers.emoji", fmt.Sprintf("trigger %d has an empty emoji", i))
		}
		if trigger.RoleID == "" {
			return NewValidationError("triggers.roleId", fmt.Sprintf("trigger %d has an empty role id", i))
		}
		if trigger.Label == "" {
			return NewValidationError("triggers.label", fmt.Sprintf("trigger %d has an empty label", i))
		}
		if _, dup := seen[trigger.Emoji]; dup {
			return NewValidationError("triggers.emoji", fmt.Sprintf("emoji %q triggers more than one role", trigger.Emoji))
		}
		seen[trigger.Emoji] = struct{}{}
	}

	return nil
}
