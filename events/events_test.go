package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records delivered events behind a mutex so async handler
// goroutines can append safely.
type collector struct {
	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

func (c *collector) handler(expected int) Handler {
	return func(ctx context.Context, event Event) {
		c.mu.Lock()
		c.events = append(c.events, event)
		if len(c.events) == expected {
			close(c.done)
		}
		c.mu.Unlock()
	}
}

func (c *collector) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
	}
}

func (c *collector) collected() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestBus_EmitDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	c := &collector{done: make(chan struct{})}
	bus.Subscribe(EventTypeCommandsGated, c.handler(1))

	bus.Emit(context.Background(), CommandsGatedEvent{
		GuildID:          "g1",
		DisabledCommands: []string{"ban"},
	})

	c.wait(t)
	events := c.collected()
	require.Len(t, events, 1)
	gated, ok := events[0].(CommandsGatedEvent)
	require.True(t, ok)
	assert.Equal(t, "g1", gated.GuildID)
	assert.Equal(t, []string{"ban"}, gated.DisabledCommands)
}

func TestBus_EmitIgnoresUnsubscribedTypes(t *testing.T) {
	bus := NewBus()
	c := &collector{done: make(chan struct{})}
	bus.Subscribe(EventTypeReactionRoleBound, c.handler(1))

	bus.Emit(context.Background(), GuildConfigCreatedEvent{GuildID: "g1"})
	bus.Emit(context.Background(), ReactionRoleBoundEvent{
		ReactionRoleID: "rr1",
		GuildID:        "g1",
		MessageID:      "m1",
		ChannelID:      "c1",
	})

	c.wait(t)
	events := c.collected()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeReactionRoleBound, events[0].Type())
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	c := &collector{done: make(chan struct{})}
	bus.Subscribe(EventTypeReactionRoleDeleted, func(ctx context.Context, event Event) {
		panic("handler blew up")
	})
	bus.Subscribe(EventTypeReactionRoleDeleted, c.handler(1))

	bus.Emit(context.Background(), ReactionRoleDeletedEvent{ReactionRoleID: "rr1", GuildID: "g1"})

	c.wait(t)
	require.Len(t, c.collected(), 1)
}

func TestTransactionalBus_FlushEmitsPending(t *testing.T) {
	real := NewBus()
	c := &collector{done: make(chan struct{})}
	real.Subscribe(EventTypeReactionRoleCreated, c.handler(2))

	tb := NewTransactionalBus(real)
	tb.Publish(ReactionRoleCreatedEvent{ReactionRoleID: "rr1", GuildID: "g1"})
	tb.Publish(ReactionRoleCreatedEvent{ReactionRoleID: "rr2", GuildID: "g1"})

	// Nothing reaches the real bus until flush.
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, c.collected())

	require.NoError(t, tb.Flush(context.Background()))

	c.wait(t)
	assert.Len(t, c.collected(), 2)
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	real := NewBus()
	c := &collector{done: make(chan struct{})}
	real.Subscribe(EventTypeGuildConfigUpdated, c.handler(1))

	tb := NewTransactionalBus(real)
	tb.Publish(GuildConfigUpdatedEvent{GuildID: "g1", Field: "logs_channel_id"})
	tb.Discard()

	require.NoError(t, tb.Flush(context.Background()))

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.collected())
}
