package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGuildConfigCreated  EventType = "guild_config_created"
	EventTypeGuildConfigUpdated  EventType = "guild_config_updated"
	EventTypeCommandsGated       EventType = "commands_gated"
	EventTypeReactionRoleCreated EventType = "reaction_role_created"
	EventTypeReactionRoleUpdated EventType = "reaction_role_updated"
	EventTypeReactionRoleDeleted EventType = "reaction_role_deleted"
	EventTypeReactionRoleBound   EventType = "reaction_role_bound"
	EventTypeReactionRoleUnbound EventType = "reaction_role_unbound"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GuildConfigCreatedEvent represents a guild config created on first access
type GuildConfigCreatedEvent struct {
	GuildID string
}

func (e GuildConfigCreatedEvent) Type() EventType {
	return EventTypeGuildConfigCreated
}

// GuildConfigUpdatedEvent represents a direct config field update
type GuildConfigUpdatedEvent struct {
	GuildID string
	Field   string
}

func (e GuildConfigUpdatedEvent) Type() EventType {
	return EventTypeGuildConfigUpdated
}

// CommandsGatedEvent represents a change to a guild's disabled-command set
type CommandsGatedEvent struct {
	GuildID          string
	DisabledCommands []string
}

func (e CommandsGatedEvent) Type() EventType {
	return EventTypeCommandsGated
}

// ReactionRoleCreatedEvent represents a newly created reaction-role definition
type ReactionRoleCreatedEvent struct {
	ReactionRoleID string
	GuildID        string
}

func (e ReactionRoleCreatedEvent) Type() EventType {
	return EventTypeReactionRoleCreated
}

// ReactionRoleUpdatedEvent represents an updated definition. Bound definitions
// need their live message re-rendered downstream.
type ReactionRoleUpdatedEvent struct {
	ReactionRoleID string
	GuildID        string
	Bound          bool
}

func (e ReactionRoleUpdatedEvent) Type() EventType {
	return EventTypeReactionRoleUpdated
}

// ReactionRoleDeletedEvent represents a deleted definition
type ReactionRoleDeletedEvent struct {
	ReactionRoleID string
	GuildID        string
}

func (e ReactionRoleDeletedEvent) Type() EventType {
	return EventTypeReactionRoleDeleted
}

// ReactionRoleBoundEvent represents a definition attached to a posted message
type ReactionRoleBoundEvent struct {
	ReactionRoleID string
	GuildID        string
	MessageID      string
	ChannelID      string
}

func (e ReactionRoleBoundEvent) Type() EventType {
	return EventTypeReactionRoleBound
}

// ReactionRoleUnboundEvent represents a definition detached from its message
type ReactionRoleUnboundEvent struct {
	ReactionRoleID string
	GuildID        string
}

func (e ReactionRoleUnboundEvent) Type() EventType {
	return EventTypeReactionRoleUnbound
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// A transactional event bus for holding pending events coupled to the Unit of Work.
// Flushes to the underlying event bus.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// called after successful DB commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events to main event bus")

	// Use background context for event emission to avoid issues with transaction context expiration
	// Events should be processed independently of the transaction lifecycle
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// called after db rollback or to clear state.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
