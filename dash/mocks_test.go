package dash

import (
	"context"

	"warden/models"
	"warden/service"

	"github.com/stretchr/testify/mock"
)

// mockConfigStore is a mock implementation of service.ConfigStore
type mockConfigStore struct {
	mock.Mock
}

func (m *mockConfigStore) GetOrCreate(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildConfig), args.Error(1)
}

func (m *mockConfigStore) UpdateDisabledCommands(ctx context.Context, guildID string, enable, disable []string) ([]string, error) {
	args := m.Called(ctx, guildID, enable, disable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockConfigStore) SetField(ctx context.Context, guildID string, field models.ConfigField, value any) error {
	args := m.Called(ctx, guildID, field, value)
	return args.Error(0)
}

// mockRegistry is a mock implementation of service.ReactionRoleRegistry
type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) Create(ctx context.Context, guildID, name string, payload models.MessagePayload, triggers []models.ReactionTrigger) (*models.ReactionRole, error) {
	args := m.Called(ctx, guildID, name, payload, triggers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReactionRole), args.Error(1)
}

func (m *mockRegistry) Update(ctx context.Context, id string, patch models.ReactionRolePatch) (*models.ReactionRole, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReactionRole), args.Error(1)
}

func (m *mockRegistry) BindMessage(ctx context.Context, id, messageID, channelID string) error {
	args := m.Called(ctx, id, messageID, channelID)
	return args.Error(0)
}

func (m *mockRegistry) Unbind(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRegistry) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRegistry) ListByGuild(ctx context.Context, guildID string) ([]*models.ReactionRole, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReactionRole), args.Error(1)
}

// fakeLookup is a canned service.GuildLookup over a fixed set of guilds
type fakeLookup struct {
	guilds   map[string]service.GuildInfo
	channels map[string][]service.ChannelInfo
	roles    map[string][]service.RoleInfo
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		guilds:   make(map[string]service.GuildInfo),
		channels: make(map[string][]service.ChannelInfo),
		roles:    make(map[string][]service.RoleInfo),
	}
}

func (f *fakeLookup) addGuild(info service.GuildInfo) {
	f.guilds[info.ID] = info
}

func (f *fakeLookup) Guild(guildID string) *service.GuildInfo {
	if info, ok := f.guilds[guildID]; ok {
		return &info
	}
	return nil
}

func (f *fakeLookup) Channels(guildID string) []service.ChannelInfo {
	if _, ok := f.guilds[guildID]; !ok {
		return nil
	}
	if f.channels[guildID] == nil {
		return []service.ChannelInfo{}
	}
	return f.channels[guildID]
}

func (f *fakeLookup) Roles(guildID string) []service.RoleInfo {
	if _, ok := f.guilds[guildID]; !ok {
		return nil
	}
	if f.roles[guildID] == nil {
		return []service.RoleInfo{}
	}
	return f.roles[guildID]
}

func (f *fakeLookup) Role(guildID, roleID string) *service.RoleInfo {
	for _, role := range f.roles[guildID] {
		if role.ID == roleID {
			return &role
		}
	}
	return nil
}

func (f *fakeLookup) GuildsIn(ids []string) []service.GuildInfo {
	result := make([]service.GuildInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := f.guilds[id]; ok {
			result = append(result, info)
		}
	}
	return result
}
