package bot

import (
	"context"
	"fmt"
	"strings"

	"warden/events"
	"warden/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config      Config
	session     *discordgo.Session
	configStore service.ConfigStore
	registry    service.ReactionRoleRegistry
	eventBus    *events.Bus
}

// New creates the Discord bot, opens the gateway connection and registers the
// built-in slash commands.
func New(config Config, configStore service.ConfigStore, registry service.ReactionRoleRegistry, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessageReactions

	bot := &Bot{
		config:      config,
		session:     dg,
		configStore: configStore,
		registry:    registry,
		eventBus:    eventBus,
	}

	// Slash command dispatch, gated per guild
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// React to configuration changes coming from the dashboard
	bot.subscribeToEvents()

	return bot, nil
}

// Lookup returns the live guild lookup backed by the gateway state cache.
func (b *Bot) Lookup() service.GuildLookup {
	return &stateLookup{session: b.session}
}

// Close shuts down the gateway connection.
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleCommands dispatches slash command interactions, refusing commands the
// guild has gated off.
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := strings.ToLower(i.ApplicationCommandData().Name)
	ctx := context.Background()

	if i.GuildID != "" {
		config, err := b.configStore.GetOrCreate(ctx, i.GuildID)
		if err != nil {
			log.WithFields(log.Fields{
				"guildID": i.GuildID,
				"command": name,
				"error":   err,
			}).Error("Failed to load guild config for command gate")
			b.respondEphemeral(s, i, "Something went wrong, try again later.")
			return
		}

		if config.IsCommandDisabled(name) {
			b.respondEphemeral(s, i, fmt.Sprintf("The `/%s` command is disabled in this server.", name))
			return
		}
	}

	switch name {
	case "ping":
		b.handlePing(s, i)
	case "serverinfo":
		b.handleServerInfo(s, i)
	case "avatar":
		b.handleAvatar(s, i)
	case "ban":
		b.handleBan(s, i)
	case "kick":
		b.handleKick(s, i)
	case "warn":
		b.handleWarn(s, i)
	case "reactionroles":
		b.handleReactionRoles(ctx, s, i)
	default:
		log.WithField("command", name).Warn("Received unknown command")
	}
}

func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to respond to interaction")
	}
}

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	b.respondEphemeral(s, i, fmt.Sprintf("Pong! Gateway latency: %dms", latency))
}

func (b *Bot) handleServerInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		b.respondEphemeral(s, i, "This command only works in a server.")
		return
	}

	b.respondEphemeral(s, i, fmt.Sprintf("**%s**: %d members, %d channels",
		guild.Name, guild.MemberCount, len(guild.Channels)))
}

func (b *Bot) handleAvatar(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			user = opt.UserValue(s)
		}
	}

	b.respondEphemeral(s, i, user.AvatarURL("512"))
}

// subscribeToEvents wires the bot to configuration changes made through the
// dashboard. Updates to bound reaction-role definitions need their message
// re-rendered; the refresh itself happens outside this engine.
func (b *Bot) subscribeToEvents() {
	b.eventBus.Subscribe(events.EventTypeCommandsGated, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.CommandsGatedEvent); ok {
			log.WithFields(log.Fields{
				"guildID":       e.GuildID,
				"disabledCount": len(e.DisabledCommands),
			}).Info("Command gate updated from dashboard")
		}
	})

	b.eventBus.Subscribe(events.EventTypeReactionRoleBound, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.ReactionRoleBoundEvent); ok {
			log.WithFields(log.Fields{
				"guildID":        e.GuildID,
				"reactionRoleID": e.ReactionRoleID,
				"messageID":      e.MessageID,
			}).Info("Reaction role bound to message")
		}
	})
}
