package repository

import (
	"context"
	"sync"
	"testing"

	"warden/events"
	"warden/models"
	"warden/repository/testutil"
	"warden/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigStore_GetOrCreate_ConcurrentTransactional drives the full
// service path: ConfigStore over the real unit-of-work factory, every call in
// its own transaction. First access for one guild raced by N requests must
// converge on a single row with no request seeing an error.
func TestConfigStore_GetOrCreate_ConcurrentTransactional(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := service.NewConfigStore(NewUnitOfWorkFactory(testDB.DB, events.NewBus()))
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	results := make([]*models.GuildConfig, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetOrCreate(ctx, "race-guild")
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i], "request %d must receive the row, not an error", i)
		require.NotNil(t, results[i])
		assert.Equal(t, "race-guild", results[i].ID)
		assert.Equal(t, results[0].EnabledLogs, results[i].EnabledLogs)
	}

	var count int
	err := testDB.DB.QueryRow(ctx, `SELECT COUNT(*) FROM guild_configs WHERE id = $1`, "race-guild").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestConfigStore_UpdateDisabledCommands_Transactional pins the read,
// reconcile and write of a command-gate update through a real transaction.
func TestConfigStore_UpdateDisabledCommands_Transactional(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := service.NewConfigStore(NewUnitOfWorkFactory(testDB.DB, events.NewBus()))
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, "g1")
	require.NoError(t, err)

	disabled, err := store.UpdateDisabledCommands(ctx, "g1", nil, []string{"ping", "ban"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ban", "ping"}, disabled)

	disabled, err = store.UpdateDisabledCommands(ctx, "g1", []string{"ping"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ban"}, disabled)

	repo := NewGuildConfigRepository(testDB.DB)
	config, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ban"}, config.DisabledCommands)
}
