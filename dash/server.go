package dash

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"warden/models"
	"warden/service"

	log "github.com/sirupsen/logrus"
)

// Server is the dashboard-facing HTTP API. It composes the configuration
// engine's services with the live guild lookup; authentication and rate
// limiting sit in front of it, outside this process.
type Server struct {
	configStore service.ConfigStore
	registry    service.ReactionRoleRegistry
	lookup      service.GuildLookup
	commands    []models.Command
	httpServer  *http.Server
}

// NewServer creates a dashboard API server.
func NewServer(addr string, configStore service.ConfigStore, registry service.ReactionRoleRegistry, lookup service.GuildLookup, commands []models.Command) *Server {
	s := &Server{
		configStore: configStore,
		registry:    registry,
		lookup:      lookup,
		commands:    commands,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Routes builds the dashboard route table.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /dash/guild/{id}", s.handleGuild)
	mux.HandleFunc("GET /dash/guild/{id}/channels", s.handleGuildChannels)
	mux.HandleFunc("GET /dash/guild/{id}/roles", s.handleGuildRoles)
	mux.HandleFunc("GET /dash/guild/{id}/role/{roleId}", s.handleGuildRole)
	mux.HandleFunc("POST /dash/guilds/in", s.handleGuildsIn)

	mux.HandleFunc("GET /dash/commands/{id}", s.handleCommands)
	mux.HandleFunc("POST /dash/update-commands/{id}", s.handleUpdateCommands)

	mux.HandleFunc("GET /dash/guild/{id}/reaction-roles", s.handleListReactionRoles)
	mux.HandleFunc("POST /dash/guild/{id}/reaction-roles", s.handleCreateReactionRole)
	mux.HandleFunc("PATCH /dash/reaction-roles/{rrId}", s.handleUpdateReactionRole)
	mux.HandleFunc("DELETE /dash/reaction-roles/{rrId}", s.handleDeleteReactionRole)
	mux.HandleFunc("POST /dash/reaction-roles/{rrId}/bind", s.handleBindReactionRole)
	mux.HandleFunc("POST /dash/reaction-roles/{rrId}/unbind", s.handleUnbindReactionRole)

	return mux
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		log.WithField("addr", s.httpServer.Addr).Info("Dashboard API listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Dashboard API server failed")
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down dashboard API: %w", err)
	}
	return nil
}
