package dash

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"warden/models"
	"warden/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleCommands(t *testing.T) {
	t.Run("groups commands with disabled flags", func(t *testing.T) {
		server, configStore, _, _ := newTestServer()
		configStore.On("GetOrCreate", mock.Anything, "g1").Return(&models.GuildConfig{
			ID:               "g1",
			DisabledCommands: []string{"ban"},
		}, nil)

		code, env := doRequest(t, server, http.MethodGet, "/dash/commands/g1", nil)

		require.Equal(t, http.StatusOK, code)
		require.True(t, env.OK)

		var groups []models.CommandGroup
		decodeData(t, env, &groups)
		require.Len(t, groups, 2)
		assert.Equal(t, "utility", groups[0].Category)
		assert.False(t, groups[0].Commands[0].Disabled)
		assert.Equal(t, "moderation", groups[1].Category)
		assert.True(t, groups[1].Commands[0].Disabled, "ban should be flagged disabled")
		assert.False(t, groups[1].Commands[1].Disabled)

		configStore.AssertExpectations(t)
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		server, configStore, _, _ := newTestServer()
		configStore.On("GetOrCreate", mock.Anything, "g1").Return(nil, errors.New("connection refused"))

		code, env := doRequest(t, server, http.MethodGet, "/dash/commands/g1", nil)

		require.Equal(t, http.StatusInternalServerError, code)
		assert.False(t, env.OK)
	})
}

func TestHandleUpdateCommands(t *testing.T) {
	t.Run("reconciles and returns new disabled set", func(t *testing.T) {
		server, configStore, _, lookup := newTestServer()
		lookup.addGuild(service.GuildInfo{ID: "g1", Name: "Test Guild"})
		configStore.On("UpdateDisabledCommands", mock.Anything, "g1", []string{"ping"}, []string{"kick"}).
			Return([]string{"ban", "kick"}, nil)

		code, env := doRequest(t, server, http.MethodPost, "/dash/update-commands/g1", map[string]any{
			"enabled":  []string{"ping"},
			"disabled": []string{"kick"},
		})

		require.Equal(t, http.StatusOK, code)
		require.True(t, env.OK)

		var disabled []string
		decodeData(t, env, &disabled)
		assert.Equal(t, []string{"ban", "kick"}, disabled)

		configStore.AssertExpectations(t)
	})

	t.Run("unknown guild short-circuits before storage", func(t *testing.T) {
		server, configStore, _, _ := newTestServer()

		code, env := doRequest(t, server, http.MethodPost, "/dash/update-commands/missing", map[string]any{
			"enabled": []string{"ping"},
		})

		require.Equal(t, http.StatusOK, code)
		assert.False(t, env.OK)
		assert.Equal(t, "Guild not found.", env.Message)
		configStore.AssertNotCalled(t, "UpdateDisabledCommands", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing config row is ok:false at 200", func(t *testing.T) {
		server, configStore, _, lookup := newTestServer()
		lookup.addGuild(service.GuildInfo{ID: "g1", Name: "Test Guild"})
		configStore.On("UpdateDisabledCommands", mock.Anything, "g1", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("guild config g1: %w", service.ErrNotFound))

		code, env := doRequest(t, server, http.MethodPost, "/dash/update-commands/g1", map[string]any{
			"disabled": []string{"ban"},
		})

		require.Equal(t, http.StatusOK, code)
		assert.False(t, env.OK)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		server, _, _, _ := newTestServer()

		code, env := doRequest(t, server, http.MethodPost, "/dash/update-commands/g1", "not json at all")

		require.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.OK)
	})
}
