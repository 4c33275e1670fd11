package dash

import (
	"encoding/json"
	"errors"
	"net/http"

	"warden/models"
	"warden/service"
)

func (s *Server) handleListReactionRoles(w http.ResponseWriter, r *http.Request) {
	list, err := s.registry.ListByGuild(r.Context(), r.PathValue("id"))
	if err != nil {
		respondStorageFailure(w)
		return
	}

	respondData(w, list)
}

func (s *Server) handleCreateReactionRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string                   `json:"name"`
		Message  models.MessagePayload    `json:"message"`
		Triggers []models.ReactionTrigger `json:"triggers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "Malformed request body.")
		return
	}

	rr, err := s.registry.Create(r.Context(), r.PathValue("id"), body.Name, body.Message, body.Triggers)
	if err != nil {
		respondRegistryError(w, err)
		return
	}

	respondData(w, rr)
}

func (s *Server) handleUpdateReactionRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     *string                  `json:"name"`
		Message  *models.MessagePayload   `json:"message"`
		Triggers []models.ReactionTrigger `json:"triggers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "Malformed request body.")
		return
	}

	rr, err := s.registry.Update(r.Context(), r.PathValue("rrId"), models.ReactionRolePatch{
		Name:     body.Name,
		Message:  body.Message,
		Triggers: body.Triggers,
	})
	if err != nil {
		respondRegistryError(w, err)
		return
	}

	respondData(w, rr)
}

func (s *Server) handleDeleteReactionRole(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(r.Context(), r.PathValue("rrId")); err != nil {
		respondRegistryError(w, err)
		return
	}

	respondMessage(w, "Reaction role deleted.")
}

func (s *Server) handleBindReactionRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MessageID string `json:"messageId"`
		ChannelID string `json:"channelId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "Malformed request body.")
		return
	}

	if err := s.registry.BindMessage(r.Context(), r.PathValue("rrId"), body.MessageID, body.ChannelID); err != nil {
		respondRegistryError(w, err)
		return
	}

	respondMessage(w, "Reaction role bound.")
}

func (s *Server) handleUnbindReactionRole(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Unbind(r.Context(), r.PathValue("rrId")); err != nil {
		respondRegistryError(w, err)
		return
	}

	respondMessage(w, "Reaction role unbound.")
}

// respondRegistryError maps registry errors to the dashboard contract:
// validation problems are 400 with the offending field, absent definitions
// are 200 with ok:false, bind conflicts are 409, everything else is a 500.
func respondRegistryError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondBadRequest(w, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		respondAbsentMessage(w, "Reaction role not found.")
	case errors.Is(err, service.ErrAlreadyBound):
		writeJSON(w, http.StatusConflict, response{OK: false, Message: "Reaction role is already bound; unbind it first."})
	default:
		respondStorageFailure(w)
	}
}
