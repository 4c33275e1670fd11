package dash

import (
	"encoding/json"
	"errors"
	"net/http"

	"warden/models"
	"warden/service"
)

// handleCommands returns the command registry grouped by category, annotated
// with the guild's disabled flags. First dashboard access for a guild creates
// its config row here.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")

	config, err := s.configStore.GetOrCreate(r.Context(), guildID)
	if err != nil {
		respondStorageFailure(w)
		return
	}

	respondData(w, models.GroupCommandsByCategory(s.commands, config))
}

// handleUpdateCommands reconciles the requested enable/disable lists into the
// guild's stored disabled-command set.
func (s *Server) handleUpdateCommands(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")

	var body struct {
		Enabled  []string `json:"enabled"`
		Disabled []string `json:"disabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "Malformed request body.")
		return
	}

	if s.lookup.Guild(guildID) == nil {
		respondAbsentMessage(w, "Guild not found.")
		return
	}

	disabled, err := s.configStore.UpdateDisabledCommands(r.Context(), guildID, body.Enabled, body.Disabled)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondAbsentMessage(w, "Guild config not found.")
			return
		}
		respondStorageFailure(w)
		return
	}

	respondData(w, disabled)
}
