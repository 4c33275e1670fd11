package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCommandsByCategory(t *testing.T) {
	commands := []Command{
		{Name: "ping", Category: "utility"},
		{Name: "ban", Category: "moderation"},
		{Name: "avatar", Category: "utility"},
		{Name: "kick", Category: "moderation"},
		{Name: "reactionroles", Category: "roles"},
	}
	config := &GuildConfig{ID: "g1", DisabledCommands: []string{"ban", "avatar"}}

	groups := GroupCommandsByCategory(commands, config)

	require.Len(t, groups, 3)

	// Categories keep first-seen registry order.
	assert.Equal(t, "utility", groups[0].Category)
	assert.Equal(t, "moderation", groups[1].Category)
	assert.Equal(t, "roles", groups[2].Category)

	require.Len(t, groups[0].Commands, 2)
	assert.False(t, groups[0].Commands[0].Disabled)
	assert.True(t, groups[0].Commands[1].Disabled)

	require.Len(t, groups[1].Commands, 2)
	assert.True(t, groups[1].Commands[0].Disabled)
	assert.False(t, groups[1].Commands[1].Disabled)
}

func TestGroupCommandsByCategory_Empty(t *testing.T) {
	groups := GroupCommandsByCategory(nil, &GuildConfig{ID: "g1"})
	assert.Empty(t, groups)
}

func TestIsCommandDisabled(t *testing.T) {
	config := &GuildConfig{ID: "g1", DisabledCommands: []string{"ban"}}

	assert.True(t, config.IsCommandDisabled("ban"))
	assert.True(t, config.IsCommandDisabled("BAN"), "lookup normalizes case")
	assert.False(t, config.IsCommandDisabled("ping"))
}
