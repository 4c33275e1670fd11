package service

import (
	"context"
	"errors"
	"fmt"

	"warden/events"
	"warden/models"

	log "github.com/sirupsen/logrus"
)

// configStore implements the ConfigStore interface
type configStore struct {
	uowFactory UnitOfWorkFactory
}

// NewConfigStore creates a new guild config store
func NewConfigStore(uowFactory UnitOfWorkFactory) ConfigStore {
	return &configStore{
		uowFactory: uowFactory,
	}
}

// GetOrCreate retrieves a guild's config or creates one with schema defaults
// if this is the first access for the guild.
func (s *configStore) GetOrCreate(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, NewStorageError("get-or-create guild config", err)
	}
	defer uow.Rollback() // No-op if already committed

	config, created, err := uow.GuildConfigRepository().GetOrCreate(ctx, guildID)
	if err != nil {
		return nil, NewStorageError("get-or-create guild config", err)
	}

	if created {
		log.WithField("guildID", guildID).Info("Created guild config on first access")
		uow.Publish(events.GuildConfigCreatedEvent{GuildID: guildID})
	}

	if err := uow.Commit(); err != nil {
		return nil, NewStorageError("get-or-create guild config", err)
	}

	return config, nil
}

// UpdateDisabledCommands reconciles the enable/disable lists against the
// stored set and persists the result.
func (s *configStore) UpdateDisabledCommands(ctx context.Context, guildID string, enable, disable []string) ([]string, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, NewStorageError("update disabled commands", err)
	}
	defer uow.Rollback()

	config, err := uow.GuildConfigRepository().Get(ctx, guildID)
	if err != nil {
		return nil, NewStorageError("update disabled commands", err)
	}
	if config == nil {
		return nil, fmt.Errorf("guild config %s: %w", guildID, ErrNotFound)
	}

	disabled := ReconcileDisabledCommands(config.DisabledCommands, enable, disable)

	if err := uow.GuildConfigRepository().UpdateDisabledCommands(ctx, guildID, disabled); err != nil {
		return nil, NewStorageError("update disabled commands", err)
	}

	uow.Publish(events.CommandsGatedEvent{
		GuildID:          guildID,
		DisabledCommands: disabled,
	})

	if err := uow.Commit(); err != nil {
		return nil, NewStorageError("update disabled commands", err)
	}

	log.WithFields(log.Fields{
		"guildID":       guildID,
		"disabledCount": len(disabled),
	}).Info("Updated disabled commands")

	return disabled, nil
}

// SetField updates a single config field.
func (s *configStore) SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NewStorageError("set config field", err)
	}
	defer uow.Rollback()

	if err := uow.GuildConfigRepository().SetField(ctx, guildID, field, value); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return NewStorageError("set config field", err)
	}

	uow.Publish(events.GuildConfigUpdatedEvent{
		GuildID: guildID,
		Field:   string(field),
	})

	if err := uow.Commit(); err != nil {
		return NewStorageError("set config field", err)
	}

	return nil
}
