package cmd

import (
	"context"
	"fmt"
	"time"

	"warden/bot"
	"warden/config"
	"warden/dash"
	"warden/database"
	"warden/events"
	"warden/repository"
	"warden/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting warden...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	databaseURL := database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName)
	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	configStore := service.NewConfigStore(uowFactory)
	registry := service.NewReactionRoleRegistry(uowFactory)
	log.Info("Services initialized")

	// Initialize Discord bot
	botConfig := bot.Config{
		Token: cfg.DiscordToken,
	}
	discordBot, err := bot.New(botConfig, configStore, registry, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot connected")

	// Initialize dashboard API
	dashServer := dash.NewServer(cfg.DashListenAddr, configStore, registry, discordBot.Lookup(), bot.BuiltinCommands)
	dashServer.Start()

	// Wait for context cancellation
	log.WithField("environment", cfg.Environment).Info("Warden is running")
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := dashServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down dashboard API")
	}

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	db.Close()
	log.Info("Shutdown completed")

	return nil
}
