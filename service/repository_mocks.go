package service

import (
	"context"

	"warden/events"
	"warden/models"

	"github.com/stretchr/testify/mock"
)

// MockGuildConfigRepository is a mock implementation of GuildConfigRepository
type MockGuildConfigRepository struct {
	mock.Mock
}

func (m *MockGuildConfigRepository) Get(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildConfig), args.Error(1)
}

func (m *MockGuildConfigRepository) GetOrCreate(ctx context.Context, guildID string) (*models.GuildConfig, bool, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.GuildConfig), args.Bool(1), args.Error(2)
}

func (m *MockGuildConfigRepository) UpdateDisabledCommands(ctx context.Context, guildID string, disabled []string) error {
	args := m.Called(ctx, guildID, disabled)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error {
	args := m.Called(ctx, guildID, field, value)
	return args.Error(0)
}

// MockReactionRoleRepository is a mock implementation of ReactionRoleRepository
type MockReactionRoleRepository struct {
	mock.Mock
}

func (m *MockReactionRoleRepository) Create(ctx context.Context, rr *models.ReactionRole) error {
	args := m.Called(ctx, rr)
	return args.Error(0)
}

func (m *MockReactionRoleRepository) GetByID(ctx context.Context, id string) (*models.ReactionRole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReactionRole), args.Error(1)
}

func (m *MockReactionRoleRepository) Update(ctx context.Context, rr *models.ReactionRole) error {
	args := m.Called(ctx, rr)
	return args.Error(0)
}

func (m *MockReactionRoleRepository) SetBinding(ctx context.Context, id string, messageID, channelID *string) error {
	args := m.Called(ctx, id, messageID, channelID)
	return args.Error(0)
}

func (m *MockReactionRoleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReactionRoleRepository) ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReactionRole), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	guildConfigRepo  GuildConfigRepository
	reactionRoleRepo ReactionRoleRepository

	// Published collects events staged during the unit of work.
	Published []events.Event
}

// SetRepositories configures the repositories this unit of work exposes
func (m *MockUnitOfWork) SetRepositories(guildConfigRepo GuildConfigRepository, reactionRoleRepo ReactionRoleRepository) {
	m.guildConfigRepo = guildConfigRepo
	m.reactionRoleRepo = reactionRoleRepo
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) GuildConfigRepository() GuildConfigRepository {
	return m.guildConfigRepo
}

func (m *MockUnitOfWork) ReactionRoleRepository() ReactionRoleRepository {
	return m.reactionRoleRepo
}

func (m *MockUnitOfWork) Publish(event events.Event) {
	m.Published = append(m.Published, event)
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
