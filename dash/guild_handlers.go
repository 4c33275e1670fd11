package dash

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleGuild(w http.ResponseWriter, r *http.Request) {
	guild := s.lookup.Guild(r.PathValue("id"))
	if guild == nil {
		respondAbsent(w)
		return
	}

	respondData(w, guild)
}

func (s *Server) handleGuildChannels(w http.ResponseWriter, r *http.Request) {
	channels := s.lookup.Channels(r.PathValue("id"))
	if channels == nil {
		respondAbsent(w)
		return
	}

	respondData(w, channels)
}

func (s *Server) handleGuildRoles(w http.ResponseWriter, r *http.Request) {
	roles := s.lookup.Roles(r.PathValue("id"))
	if roles == nil {
		respondAbsent(w)
		return
	}

	respondData(w, roles)
}

func (s *Server) handleGuildRole(w http.ResponseWriter, r *http.Request) {
	role := s.lookup.Role(r.PathValue("id"), r.PathValue("roleId"))
	if role == nil {
		respondAbsent(w)
		return
	}

	respondData(w, role)
}

func (s *Server) handleGuildsIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "Malformed request body.")
		return
	}
	if len(body.IDs) == 0 {
		respondBadRequest(w, "No valid guild IDs provided.")
		return
	}

	respondData(w, s.lookup.GuildsIn(body.IDs))
}
